package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/angristan/smarthome-tui/internal/catalog"
	"github.com/angristan/smarthome-tui/internal/home"
	"github.com/angristan/smarthome-tui/internal/models"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		room   string
		query  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List devices, optionally filtered by room and search text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, true)
			if err != nil {
				return err
			}
			defer s.Close()

			devices := catalog.Filter(s.home.Devices(), room, query)
			s.log.V(1).Info("Listing devices", "room", room, "query", query, "count", len(devices))

			if asJSON {
				out, err := json.MarshalIndent(devices, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			return printDevices(cmd.OutOrStdout(), s.home, devices)
		},
	}

	cmd.Flags().StringVarP(&room, "room", "r", catalog.AllRooms, "Only devices in this room")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only devices whose name, room or type contains this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the devices as JSON")
	return cmd
}

// printDevices writes devices as a table
func printDevices(out io.Writer, h *home.Home, devices []models.Device) error {
	if len(devices) == 0 {
		_, err := fmt.Fprintln(out, "No devices found")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROOM\tTYPE\tPOWER\tSTATE\tUPDATED")
	for _, d := range devices {
		updated := "—"
		if at, ok := h.LastUpdated(d.ID); ok {
			updated = at.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Name, d.Room, d.Type, powerLabel(d.State.Power), describeState(d), updated)
	}
	return w.Flush()
}

func powerLabel(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func describeState(d models.Device) string {
	switch d.Type {
	case models.DeviceLight:
		return fmt.Sprintf("%d%% %dK", d.Brightness(), d.ColorTemp())
	case models.DeviceFan:
		return fmt.Sprintf("speed %d", d.Speed())
	}
	return "-"
}
