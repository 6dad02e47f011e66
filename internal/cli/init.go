package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/foia/internal/config"
	"github.com/example/foia/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database and requester profile",
	Long: `Creates the data directory (~/.foia), initializes the tracking database,
and stores the requester profile used to fill letterheads in generated letters.
All profile fields are optional; missing ones render as placeholders.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		address, _ := cmd.Flags().GetString("address")
		cityStateZip, _ := cmd.Flags().GetString("city-state-zip")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")

		if _, err := db.GetDB(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(dir)
		if err != nil {
			return err
		}
		if name != "" {
			cfg.Name = name
		}
		if address != "" {
			cfg.Address = address
		}
		if cityStateZip != "" {
			cfg.CityStateZip = cityStateZip
		}
		if email != "" {
			cfg.Email = email
		}
		if phone != "" {
			cfg.Phone = phone
		}

		if err := config.SaveConfig(dir, cfg); err != nil {
			return err
		}

		fmt.Printf("✓ Initialized %s\n", dir)
		fmt.Printf("  Database: %s\n", mustDBPath())
		if cfg.Name != "" {
			fmt.Printf("  Requester: %s\n", cfg.Name)
		} else {
			fmt.Println("  Requester profile empty; letters will use placeholders")
		}
		return nil
	},
}

func mustDBPath() string {
	path, err := db.GetDBPath()
	if err != nil {
		return "(unknown)"
	}
	return path
}

func init() {
	initCmd.Flags().String("name", "", "Requester full name")
	initCmd.Flags().String("address", "", "Street address")
	initCmd.Flags().String("city-state-zip", "", "City, state, and ZIP code")
	initCmd.Flags().String("email", "", "Email address")
	initCmd.Flags().String("phone", "", "Phone number")
}

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return initCmd
}
