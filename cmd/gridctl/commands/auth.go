package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lanternworks/gridlink/auth"
	"github.com/lanternworks/gridlink/callback"
	"github.com/lanternworks/gridlink/conn"
	"github.com/lanternworks/gridlink/user"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Run a ticket issuance and validation round trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			emu := newPlatform()
			dispatcher, journalFile, err := newDispatcher()
			if err != nil {
				return err
			}
			if journalFile != nil {
				defer journalFile.Close()
			}

			if err := auth.OnTicketCreated(dispatcher, func(ev auth.TicketCreated) {
				fmt.Printf("ticket created: handle=%d err=%v\n", ev.Handle, ev.Err)
			}); err != nil {
				return err
			}
			if err := auth.OnSessionValidated(dispatcher, func(ev auth.SessionValidated) {
				fmt.Printf("session validated: identity=%s owner=%s err=%v\n",
					ev.Identity, ev.Owner, ev.Err)
			}); err != nil {
				return err
			}
			if err := conn.OnConnected(dispatcher, func(conn.Connected) {
				fmt.Println("connected to platform")
			}); err != nil {
				return err
			}

			profile, err := user.New(emu)
			if err != nil {
				return err
			}
			client, err := auth.New(auth.Config{Caller: emu, Logger: logger})
			if err != nil {
				return err
			}

			emu.ReportConnected()
			self := profile.Identity()
			fmt.Printf("local user: identity=%s level=%d\n", self, profile.Level())

			handle, ticket := client.IssueTicket()
			fmt.Printf("issued ticket: handle=%d len=%d\n", handle, len(ticket))

			if err := client.BeginSession(self, ticket); err != nil {
				return fmt.Errorf("begin session: %w", err)
			}
			if err := emu.RunCallbacks(dispatcher); err != nil {
				return fmt.Errorf("callback pump: %w", err)
			}

			client.CancelTicket(handle)
			if err := emu.RunCallbacks(dispatcher); err != nil {
				return fmt.Errorf("callback pump: %w", err)
			}

			client.EndSession(self)
			fmt.Println("session ended")
			return nil
		},
	}
}

func newDispatcher() (*callback.Dispatcher, *os.File, error) {
	dcfg := callback.Config{Logger: logger}
	var f *os.File
	if journal != "" {
		var err error
		f, err = os.Create(journal)
		if err != nil {
			return nil, nil, fmt.Errorf("journal create: %w", err)
		}
		dcfg.Journal = callback.NewJournal(f)
	}
	return callback.New(dcfg), f, nil
}
