package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/model"
	"github.com/mohsinali45213/folio/internal/render"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage work experiences",
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a work experience",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		company, _ := cmd.Flags().GetString("company")
		location, _ := cmd.Flags().GetString("location")
		duration, _ := cmd.Flags().GetString("duration")
		typeStr, _ := cmd.Flags().GetString("type")
		tech, _ := cmd.Flags().GetString("tech")

		exp, err := forms.SaveExperience(model.Experience{
			Title:        title,
			Company:      company,
			Location:     location,
			Duration:     duration,
			Type:         model.ExperienceType(typeStr),
			Description:  readStdin(),
			Technologies: tech,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added experience %s at %s (%s)\n", exp.Title, exp.Company, exp.ID)
		return nil
	},
}

var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List experiences",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(render.ExperienceTable(services.Experiences()))
		return nil
	},
}

var experienceShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an experience",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, err := services.Experience(args[0])
		if err != nil {
			return err
		}

		fields := []string{
			render.Field("ID", exp.ID),
			render.Field("Company", exp.Company),
			render.Field("Duration", exp.Duration),
			render.Field("Type", string(exp.Type)),
		}
		if exp.Location != "" {
			fields = append(fields, render.Field("Location", exp.Location))
		}
		if exp.Technologies != "" {
			fields = append(fields, render.Field("Technologies", exp.Technologies))
		}
		fmt.Print(render.EntityHeader(exp.Title, fields))
		if exp.Description != "" {
			rendered, err := render.Markdown(exp.Description)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
		}
		return nil
	},
}

var experienceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an experience",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := content.ExperiencePatch{}

		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("company") {
			v, _ := cmd.Flags().GetString("company")
			patch.Company = &v
		}
		if cmd.Flags().Changed("location") {
			v, _ := cmd.Flags().GetString("location")
			patch.Location = &v
		}
		if cmd.Flags().Changed("duration") {
			v, _ := cmd.Flags().GetString("duration")
			patch.Duration = &v
		}
		if cmd.Flags().Changed("type") {
			v, _ := cmd.Flags().GetString("type")
			t := model.ExperienceType(v)
			if err := model.ValidateExperienceType(t); err != nil {
				return err
			}
			patch.Type = &t
		}
		if cmd.Flags().Changed("tech") {
			v, _ := cmd.Flags().GetString("tech")
			patch.Technologies = &v
		}
		if body := readStdin(); body != "" {
			patch.Description = &body
		}

		if patch == (content.ExperiencePatch{}) {
			return fmt.Errorf("at least one update flag or piped body is required")
		}

		exp, err := services.UpdateExperience(args[0], patch)
		if err != nil {
			return err
		}
		cache.LoadExperiences()
		fmt.Printf("Updated experience %s\n", exp.ID)
		return nil
	},
}

var experienceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an experience",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, err := services.Experience(args[0])
		if err != nil {
			return err
		}
		if err := forms.DeleteExperience(*exp); err != nil {
			return err
		}
		fmt.Printf("Deleted experience %s\n", exp.ID)
		return nil
	},
}

func init() {
	experienceAddCmd.Flags().String("title", "", "role title")
	experienceAddCmd.Flags().String("company", "", "company name")
	experienceAddCmd.Flags().String("location", "", "location")
	experienceAddCmd.Flags().String("duration", "", "duration, e.g. \"2022 - Present\"")
	experienceAddCmd.Flags().String("type", string(model.TypeFullTime), "employment type")
	experienceAddCmd.Flags().String("tech", "", "comma-separated technologies")

	experienceUpdateCmd.Flags().String("title", "", "role title")
	experienceUpdateCmd.Flags().String("company", "", "company name")
	experienceUpdateCmd.Flags().String("location", "", "location")
	experienceUpdateCmd.Flags().String("duration", "", "duration")
	experienceUpdateCmd.Flags().String("type", "", "employment type")
	experienceUpdateCmd.Flags().String("tech", "", "comma-separated technologies")

	experienceDeleteCmd.Flags().Bool("force", false, "skip confirmation")

	experienceCmd.AddCommand(experienceAddCmd)
	experienceCmd.AddCommand(experienceListCmd)
	experienceCmd.AddCommand(experienceShowCmd)
	experienceCmd.AddCommand(experienceUpdateCmd)
	experienceCmd.AddCommand(experienceDeleteCmd)
	rootCmd.AddCommand(experienceCmd)
}
