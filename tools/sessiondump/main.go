// Command sessiondump prints the client's persisted state in read-only
// mode. Token values are masked; this exists to debug session resume
// problems, not to exfiltrate credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"skillspot/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", ".skillspot", "path to the badger state store")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening state store: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				table.Append([]string{key, render(key, v)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning state store: ", err)
	}
	table.Render()
}

func render(key string, value []byte) string {
	if key == "session:credentials" {
		var pair domain.CredentialPair
		if err := json.Unmarshal(value, &pair); err != nil {
			return fmt.Sprintf("<unreadable: %v>", err)
		}
		return fmt.Sprintf("access=%s refresh=%s", mask(pair.Access), mask(pair.Refresh))
	}
	return string(value)
}

// mask keeps just enough of a token to correlate with server logs.
func mask(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "…" + token[len(token)-4:]
}
