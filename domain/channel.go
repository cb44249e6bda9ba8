package domain

// ChannelState is the lifecycle state of the single push channel. At most one
// connection is Open or Connecting system-wide.
type ChannelState int

const (
	ChannelClosed ChannelState = iota
	ChannelConnecting
	ChannelOpen
	ChannelErrored
)

func (s ChannelState) String() string {
	switch s {
	case ChannelClosed:
		return "closed"
	case ChannelConnecting:
		return "connecting"
	case ChannelOpen:
		return "open"
	case ChannelErrored:
		return "errored"
	default:
		return "unknown"
	}
}
