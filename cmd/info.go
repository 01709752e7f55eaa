package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/editor"
	"github.com/mohsinali45213/folio/internal/export"
	"github.com/mohsinali45213/folio/internal/model"
	"github.com/mohsinali45213/folio/internal/render"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Manage the profile",
}

var infoShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := services.PersonalInfo()
		if err != nil {
			if !errors.Is(err, content.ErrNotFound) {
				return err
			}
			fallback := model.DefaultPersonalInfo()
			info = &fallback
			fmt.Println("No profile saved yet, showing defaults. Run 'folio info edit' to create one.")
		}

		fields := []string{
			render.Field("Title", info.Title),
			render.Field("Email", info.Email),
		}
		if info.Phone != "" {
			fields = append(fields, render.Field("Phone", info.Phone))
		}
		if info.Location != "" {
			fields = append(fields, render.Field("Location", info.Location))
		}
		if info.Website != "" {
			fields = append(fields, render.Field("Website", info.Website))
		}
		if info.GitHub != "" {
			fields = append(fields, render.Field("GitHub", info.GitHub))
		}
		if info.LinkedIn != "" {
			fields = append(fields, render.Field("LinkedIn", info.LinkedIn))
		}
		fmt.Print(render.EntityHeader(info.Name, fields))
		if info.Bio != "" {
			rendered, err := render.Markdown(info.Bio)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
		}
		return nil
	},
}

var infoEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the profile in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := services.PersonalInfo()
		if err != nil {
			if !errors.Is(err, content.ErrNotFound) {
				return err
			}
			blank := model.DefaultPersonalInfo()
			info = &blank
		}

		data, err := export.MarshalInfo(*info)
		if err != nil {
			return err
		}
		path := filepath.Join(dataDir, "info.md")
		if err := os.WriteFile(path, data, 0600); err != nil {
			return fmt.Errorf("writing profile file: %w", err)
		}

		if err := editor.Open(path); err != nil {
			return err
		}

		edited, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading profile file: %w", err)
		}
		if bytes.Equal(edited, data) {
			fmt.Println("No changes")
			return nil
		}
		parsed, err := export.ParseInfo(bytes.NewReader(edited))
		if err != nil {
			return err
		}
		parsed.ID = info.ID

		saved, err := forms.SavePersonalInfo(parsed, "")
		if err != nil {
			return err
		}
		os.Remove(path)
		fmt.Printf("Saved profile for %s\n", saved.Name)
		return nil
	},
}

var infoImageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Set the profile image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := services.PersonalInfo()
		if err != nil {
			if !errors.Is(err, content.ErrNotFound) {
				return err
			}
			return fmt.Errorf("no profile yet, run 'folio info edit' first")
		}
		if _, err := forms.SavePersonalInfo(*info, args[0]); err != nil {
			return err
		}
		fmt.Println("Updated profile image")
		return nil
	},
}

func init() {
	infoCmd.AddCommand(infoShowCmd)
	infoCmd.AddCommand(infoEditCmd)
	infoCmd.AddCommand(infoImageCmd)
	rootCmd.AddCommand(infoCmd)
}
