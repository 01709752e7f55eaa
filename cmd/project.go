package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/model"
	"github.com/mohsinali45213/folio/internal/render"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage portfolio projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		tech, _ := cmd.Flags().GetString("tech")
		liveURL, _ := cmd.Flags().GetString("live-url")
		githubURL, _ := cmd.Flags().GetString("github-url")
		featured, _ := cmd.Flags().GetBool("featured")
		status, _ := cmd.Flags().GetString("status")
		image, _ := cmd.Flags().GetString("image")

		proj, err := forms.SaveProject(model.Project{
			Title:       title,
			Description: readStdin(),
			Tech:        tech,
			LiveURL:     liveURL,
			GithubURL:   githubURL,
			Featured:    featured,
			Status:      model.ProjectStatus(status),
		}, image)
		if err != nil {
			return err
		}
		fmt.Printf("Added project %s (%s)\n", proj.Title, proj.ID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		if featured, _ := cmd.Flags().GetBool("featured"); featured {
			fmt.Println(render.ProjectTable(services.FeaturedProjects()))
			return nil
		}
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			fmt.Println(render.ProjectTable(services.ProjectsByStatus(model.ProjectStatus(status))))
			return nil
		}
		fmt.Println(render.ProjectTable(services.Projects()))
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := services.Project(args[0])
		if err != nil {
			return err
		}

		fields := []string{
			render.Field("ID", proj.ID),
			render.Field("Status", render.StatusBadge(proj.Status)),
		}
		if proj.Featured {
			fields = append(fields, render.Field("Featured", "yes"))
		}
		if proj.Tech != "" {
			fields = append(fields, render.Field("Tech", proj.Tech))
		}
		if proj.LiveURL != "" {
			fields = append(fields, render.Field("Live", proj.LiveURL))
		}
		if proj.GithubURL != "" {
			fields = append(fields, render.Field("Source", proj.GithubURL))
		}
		if proj.Image != "" {
			fields = append(fields, render.Field("Image", proj.Image))
		}
		fmt.Print(render.EntityHeader(proj.Title, fields))
		if proj.Description != "" {
			rendered, err := render.Markdown(proj.Description)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
		}
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := content.ProjectPatch{}

		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("tech") {
			v, _ := cmd.Flags().GetString("tech")
			patch.Tech = &v
		}
		if cmd.Flags().Changed("live-url") {
			v, _ := cmd.Flags().GetString("live-url")
			patch.LiveURL = &v
		}
		if cmd.Flags().Changed("github-url") {
			v, _ := cmd.Flags().GetString("github-url")
			patch.GithubURL = &v
		}
		if cmd.Flags().Changed("featured") {
			v, _ := cmd.Flags().GetBool("featured")
			patch.Featured = &v
		}
		if cmd.Flags().Changed("status") {
			v, _ := cmd.Flags().GetString("status")
			s := model.ProjectStatus(v)
			if err := model.ValidateProjectStatus(s); err != nil {
				return err
			}
			patch.Status = &s
		}
		if body := readStdin(); body != "" {
			patch.Description = &body
		}

		if image, _ := cmd.Flags().GetString("image"); image != "" {
			proj, err := services.Project(args[0])
			if err != nil {
				return err
			}
			ref, err := forms.UploadImage(image, proj.Image)
			if err != nil {
				return err
			}
			patch.Image = &ref
		}

		if patch == (content.ProjectPatch{}) {
			return fmt.Errorf("at least one update flag or piped body is required")
		}

		proj, err := services.UpdateProject(args[0], patch)
		if err != nil {
			return err
		}
		cache.LoadProjects()
		fmt.Printf("Updated project %s\n", proj.ID)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and its stored image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := services.Project(args[0])
		if err != nil {
			return err
		}
		if err := forms.DeleteProject(*proj); err != nil {
			return err
		}
		fmt.Printf("Deleted project %s\n", proj.ID)
		return nil
	},
}

func init() {
	projectAddCmd.Flags().String("title", "", "project title")
	projectAddCmd.Flags().String("tech", "", "comma-separated tech stack")
	projectAddCmd.Flags().String("live-url", "", "deployed URL")
	projectAddCmd.Flags().String("github-url", "", "source repository URL")
	projectAddCmd.Flags().Bool("featured", false, "feature on the landing page")
	projectAddCmd.Flags().String("status", string(model.StatusCompleted), "completed, in-progress, or planned")
	projectAddCmd.Flags().String("image", "", "path to a cover image")

	projectListCmd.Flags().Bool("featured", false, "only featured projects")
	projectListCmd.Flags().String("status", "", "filter by status")

	projectUpdateCmd.Flags().String("title", "", "project title")
	projectUpdateCmd.Flags().String("tech", "", "comma-separated tech stack")
	projectUpdateCmd.Flags().String("live-url", "", "deployed URL")
	projectUpdateCmd.Flags().String("github-url", "", "source repository URL")
	projectUpdateCmd.Flags().Bool("featured", false, "feature on the landing page")
	projectUpdateCmd.Flags().String("status", "", "completed, in-progress, or planned")
	projectUpdateCmd.Flags().String("image", "", "path to a new cover image")

	projectDeleteCmd.Flags().Bool("force", false, "skip confirmation")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}
