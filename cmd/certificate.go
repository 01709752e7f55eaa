package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/model"
	"github.com/mohsinali45213/folio/internal/render"
)

var certificateCmd = &cobra.Command{
	Use:     "certificate",
	Aliases: []string{"cert"},
	Short:   "Manage certificates",
}

var certificateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a certificate",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		issuer, _ := cmd.Flags().GetString("issuer")
		date, _ := cmd.Flags().GetString("date")
		credentialID, _ := cmd.Flags().GetString("credential-id")
		skills, _ := cmd.Flags().GetString("skills")
		verified, _ := cmd.Flags().GetBool("verified")
		link, _ := cmd.Flags().GetString("link")
		image, _ := cmd.Flags().GetString("image")

		cert, err := forms.SaveCertificate(model.Certificate{
			Title:        title,
			Issuer:       issuer,
			Date:         date,
			CredentialID: credentialID,
			Description:  readStdin(),
			Skills:       skills,
			Verified:     verified,
			Link:         link,
		}, image)
		if err != nil {
			return err
		}
		fmt.Printf("Added certificate %s from %s (%s)\n", cert.Title, cert.Issuer, cert.ID)
		return nil
	},
}

var certificateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(render.CertificateTable(services.Certificates()))
		return nil
	},
}

var certificateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a certificate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cert, err := services.Certificate(args[0])
		if err != nil {
			return err
		}

		fields := []string{
			render.Field("ID", cert.ID),
			render.Field("Issuer", cert.Issuer),
		}
		if cert.Date != "" {
			fields = append(fields, render.Field("Date", cert.Date))
		}
		if cert.CredentialID != "" {
			fields = append(fields, render.Field("Credential", cert.CredentialID))
		}
		if cert.Skills != "" {
			fields = append(fields, render.Field("Skills", cert.Skills))
		}
		if cert.Verified {
			fields = append(fields, render.Field("Verified", "yes"))
		}
		if cert.Link != "" {
			fields = append(fields, render.Field("Link", cert.Link))
		}
		fmt.Print(render.EntityHeader(cert.Title, fields))
		if cert.Description != "" {
			rendered, err := render.Markdown(cert.Description)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
		}
		return nil
	},
}

var certificateUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a certificate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := content.CertificatePatch{}

		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("issuer") {
			v, _ := cmd.Flags().GetString("issuer")
			patch.Issuer = &v
		}
		if cmd.Flags().Changed("date") {
			v, _ := cmd.Flags().GetString("date")
			patch.Date = &v
		}
		if cmd.Flags().Changed("credential-id") {
			v, _ := cmd.Flags().GetString("credential-id")
			patch.CredentialID = &v
		}
		if cmd.Flags().Changed("skills") {
			v, _ := cmd.Flags().GetString("skills")
			patch.Skills = &v
		}
		if cmd.Flags().Changed("verified") {
			v, _ := cmd.Flags().GetBool("verified")
			patch.Verified = &v
		}
		if cmd.Flags().Changed("link") {
			v, _ := cmd.Flags().GetString("link")
			patch.Link = &v
		}
		if body := readStdin(); body != "" {
			patch.Description = &body
		}

		if image, _ := cmd.Flags().GetString("image"); image != "" {
			cert, err := services.Certificate(args[0])
			if err != nil {
				return err
			}
			ref, err := forms.UploadImage(image, cert.Image)
			if err != nil {
				return err
			}
			patch.Image = &ref
		}

		if patch == (content.CertificatePatch{}) {
			return fmt.Errorf("at least one update flag or piped body is required")
		}

		cert, err := services.UpdateCertificate(args[0], patch)
		if err != nil {
			return err
		}
		cache.LoadCertificates()
		fmt.Printf("Updated certificate %s\n", cert.ID)
		return nil
	},
}

var certificateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a certificate and its stored image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cert, err := services.Certificate(args[0])
		if err != nil {
			return err
		}
		if err := forms.DeleteCertificate(*cert); err != nil {
			return err
		}
		fmt.Printf("Deleted certificate %s\n", cert.ID)
		return nil
	},
}

func init() {
	certificateAddCmd.Flags().String("title", "", "certificate title")
	certificateAddCmd.Flags().String("issuer", "", "issuing organization")
	certificateAddCmd.Flags().String("date", "", "issue date")
	certificateAddCmd.Flags().String("credential-id", "", "issuer's credential ID")
	certificateAddCmd.Flags().String("skills", "", "comma-separated related skills")
	certificateAddCmd.Flags().Bool("verified", false, "mark as verified")
	certificateAddCmd.Flags().String("link", "", "verification URL")
	certificateAddCmd.Flags().String("image", "", "path to a certificate image")

	certificateUpdateCmd.Flags().String("title", "", "certificate title")
	certificateUpdateCmd.Flags().String("issuer", "", "issuing organization")
	certificateUpdateCmd.Flags().String("date", "", "issue date")
	certificateUpdateCmd.Flags().String("credential-id", "", "issuer's credential ID")
	certificateUpdateCmd.Flags().String("skills", "", "comma-separated related skills")
	certificateUpdateCmd.Flags().Bool("verified", false, "mark as verified")
	certificateUpdateCmd.Flags().String("link", "", "verification URL")
	certificateUpdateCmd.Flags().String("image", "", "path to a new certificate image")

	certificateDeleteCmd.Flags().Bool("force", false, "skip confirmation")

	certificateCmd.AddCommand(certificateAddCmd)
	certificateCmd.AddCommand(certificateListCmd)
	certificateCmd.AddCommand(certificateShowCmd)
	certificateCmd.AddCommand(certificateUpdateCmd)
	certificateCmd.AddCommand(certificateDeleteCmd)
	rootCmd.AddCommand(certificateCmd)
}
