package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage journal profiles",
	Long: `A profile is one person's journal, identified by its access key. All
record commands operate on the profile selected with --profile.`,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileKey == "" {
			return fmt.Errorf("pass --profile to set the new profile's key")
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.CreateProfile(profileKey, args[0]); err != nil {
			return err
		}
		fmt.Printf("Perfil %q criado.\n", args[0])
		return nil
	},
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename [name]",
	Short: "Rename the selected profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := requireSession(st)
		if err != nil {
			return err
		}
		if err := st.RenameProfile(sess.ProfileKey, args[0]); err != nil {
			return err
		}
		fmt.Printf("Perfil renomeado para %q.\n", args[0])
		return nil
	},
}

var profileChangeKeyCmd = &cobra.Command{
	Use:   "change-key [new-key]",
	Short: "Change the selected profile's access key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := requireSession(st)
		if err != nil {
			return err
		}
		if err := st.ChangeKey(sess.ProfileKey, args[0]); err != nil {
			return err
		}
		fmt.Println("Chave de acesso alterada.")
		return nil
	},
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every record of the selected profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("yes")
		if !confirm {
			return fmt.Errorf("this deletes all records permanently, re-run with --yes to confirm")
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := requireSession(st)
		if err != nil {
			return err
		}
		if err := st.ClearRecords(sess.ProfileKey); err != nil {
			return err
		}
		fmt.Println("Registros apagados.")
		return nil
	},
}

func init() {
	profileClearCmd.Flags().Bool("yes", false, "confirm deletion")
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileRenameCmd)
	profileCmd.AddCommand(profileChangeKeyCmd)
	profileCmd.AddCommand(profileClearCmd)
}
