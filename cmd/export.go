package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/export"
	"github.com/mohsinali45213/folio/internal/model"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Snapshot all content to a directory of markdown files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle := export.Bundle{
			Experiences:  services.Experiences(),
			Projects:     services.Projects(),
			Skills:       services.Skills(),
			Certificates: services.Certificates(),
		}
		info, err := services.PersonalInfo()
		if err != nil && !errors.Is(err, content.ErrNotFound) {
			return err
		}
		bundle.PersonalInfo = info

		if err := export.Write(args[0], bundle); err != nil {
			return err
		}
		fmt.Printf("Exported %d experiences, %d projects, %d skills, %d certificates to %s\n",
			len(bundle.Experiences), len(bundle.Projects), len(bundle.Skills), len(bundle.Certificates), args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Push a content bundle to the store",
	Long:  "Push a content bundle to the store. Entries with an id update the matching document; entries without one are created.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := export.Read(args[0])
		if err != nil {
			return err
		}

		var created, updated, failed int
		count := func(hadID bool, err error) {
			switch {
			case err != nil:
				failed++
				fmt.Printf("warning: %v\n", err)
			case hadID:
				updated++
			default:
				created++
			}
		}

		if bundle.PersonalInfo != nil {
			_, err := forms.SavePersonalInfo(*bundle.PersonalInfo, "")
			count(bundle.PersonalInfo.ID != "", err)
		}
		for _, e := range bundle.Experiences {
			_, err := forms.SaveExperience(e)
			count(e.ID != "", err)
		}
		for _, p := range bundle.Projects {
			_, err := forms.SaveProject(p, "")
			count(p.ID != "", err)
		}
		for _, s := range bundle.Skills {
			_, err := forms.SaveSkill(importBundleSkill(s))
			count(s.ID != "", err)
		}
		for _, c := range bundle.Certificates {
			_, err := forms.SaveCertificate(c, "")
			count(c.ID != "", err)
		}

		fmt.Printf("Imported %d created, %d updated", created, updated)
		if failed > 0 {
			fmt.Printf(", %d failed", failed)
		}
		fmt.Println()
		if failed > 0 {
			return fmt.Errorf("%d entries failed to import", failed)
		}
		return nil
	},
}

// importBundleSkill keeps the proficiency pair consistent for hand-written
// bundles that only set a level.
func importBundleSkill(s model.Skill) model.Skill {
	if s.Proficiency == "" {
		s.Proficiency = model.ProficiencyForLevel(s.Level)
	}
	return s
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
