package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/model"
	"github.com/mohsinali45213/folio/internal/render"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skills",
}

var skillAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		category, _ := cmd.Flags().GetString("category")
		color, _ := cmd.Flags().GetString("color")

		skill, err := forms.SaveSkill(model.Skill{
			Name:     args[0],
			Level:    level,
			Category: category,
			Color:    color,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added skill %s at level %d (%s, %s)\n", skill.Name, skill.Level, skill.Proficiency, skill.ID)
		return nil
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			fmt.Println(render.SkillTable(services.SkillsByCategory(category)))
			return nil
		}
		fmt.Println(render.SkillTable(services.Skills()))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, err := services.Skill(args[0])
		if err != nil {
			return err
		}
		fields := []string{
			render.Field("ID", skill.ID),
			render.Field("Category", skill.Category),
			render.Field("Level", fmt.Sprintf("%d/100", skill.Level)),
			render.Field("Proficiency", render.ProficiencyBadge(skill.Proficiency)),
		}
		if skill.Color != "" {
			fields = append(fields, render.Field("Color", skill.Color))
		}
		fmt.Print(render.EntityHeader(skill.Name, fields))
		return nil
	},
}

var skillUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a skill",
	Long:  "Update a skill. Changing --level re-derives the proficiency; changing --proficiency snaps the level to its band.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := content.SkillPatch{}

		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			patch.Name = &v
		}
		if cmd.Flags().Changed("level") {
			v, _ := cmd.Flags().GetInt("level")
			if v < 0 || v > 100 {
				return fmt.Errorf("level must be between 0 and 100, got %d", v)
			}
			patch.Level = &v
		}
		if cmd.Flags().Changed("proficiency") {
			v, _ := cmd.Flags().GetString("proficiency")
			p := model.Proficiency(v)
			patch.Proficiency = &p
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			patch.Category = &v
		}
		if cmd.Flags().Changed("color") {
			v, _ := cmd.Flags().GetString("color")
			if err := model.ValidateSkillColor(v); err != nil {
				return err
			}
			patch.Color = &v
		}

		if patch == (content.SkillPatch{}) {
			return fmt.Errorf("at least one update flag is required")
		}

		skill, err := services.UpdateSkill(args[0], patch)
		if err != nil {
			return err
		}
		cache.LoadSkills()
		fmt.Printf("Updated skill %s: level %d (%s)\n", skill.Name, skill.Level, skill.Proficiency)
		return nil
	},
}

var skillDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, err := services.Skill(args[0])
		if err != nil {
			return err
		}
		if err := forms.DeleteSkill(*skill); err != nil {
			return err
		}
		fmt.Printf("Deleted skill %s\n", skill.ID)
		return nil
	},
}

var skillColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the theme color palette",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(strings.Join(model.SkillColors, "\n"))
		return nil
	},
}

func init() {
	skillAddCmd.Flags().Int("level", 50, "level from 0 to 100")
	skillAddCmd.Flags().String("category", "", "skill category")
	skillAddCmd.Flags().String("color", "", "theme color token (see 'folio skill colors')")

	skillListCmd.Flags().String("category", "", "filter by category")

	skillUpdateCmd.Flags().String("name", "", "skill name")
	skillUpdateCmd.Flags().Int("level", -1, "level from 0 to 100")
	skillUpdateCmd.Flags().String("proficiency", "", "Beginner, Intermediate, or Advanced")
	skillUpdateCmd.Flags().String("category", "", "skill category")
	skillUpdateCmd.Flags().String("color", "", "theme color token")

	skillDeleteCmd.Flags().Bool("force", false, "skip confirmation")

	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillUpdateCmd)
	skillCmd.AddCommand(skillDeleteCmd)
	skillCmd.AddCommand(skillColorsCmd)
	rootCmd.AddCommand(skillCmd)
}
