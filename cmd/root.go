package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/admin"
	"github.com/mohsinali45213/folio/internal/appwrite"
	"github.com/mohsinali45213/folio/internal/config"
	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/store"
)

var (
	version  = "dev"
	dataDir  string
	cfg      *config.Config
	client   *appwrite.Client
	services *content.Services
	cache    *store.Content
	forms    *admin.Forms
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".folio")
	}
	return filepath.Join(home, ".folio")
}

var rootCmd = &cobra.Command{
	Use:     "folio",
	Short:   "Manage portfolio content from the terminal",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}

		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		client = appwrite.New(cfg.Appwrite.Endpoint, cfg.Appwrite.ProjectID)
		if cfg.Session != "" {
			client = client.WithSession(cfg.Session)
		} else if cfg.Appwrite.APIKey != "" {
			client = client.WithKey(cfg.Appwrite.APIKey)
		}

		services = content.New(client, cfg.Appwrite.DatabaseID, cfg.Appwrite.Collections)
		cache = store.New(services)
		forms = admin.New(services, cache, client, cfg.Appwrite.BucketID, func(prompt string) (bool, error) {
			return confirmDelete(cmd, prompt)
		})
		return nil
	},
	SilenceUsage: true,
}

// confirmDelete prompts unless the command carries --force.
func confirmDelete(cmd *cobra.Command, prompt string) (bool, error) {
	if force, err := cmd.Flags().GetBool("force"); err == nil && force {
		return true, nil
	}
	var ok bool
	if err := huh.NewConfirm().Title(prompt).Value(&ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func readStdin() string {
	info, err := os.Stdin.Stat()
	if err != nil {
		return ""
	}
	// Only read if stdin is explicitly a pipe (not a terminal, not a socket)
	if info.Mode()&os.ModeNamedPipe == 0 && info.Size() == 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return string(data)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory path")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"auth login": {
				Examples: []mtp.Example{
					{Description: "Log in with an email prompt", Command: "folio auth login"},
					{Description: "Log in with an explicit email", Command: "folio auth login --email me@example.com"},
				},
			},
			"info edit": {
				Examples: []mtp.Example{
					{Description: "Edit the profile in $EDITOR", Command: "folio info edit"},
				},
			},
			"experience add": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Description body for the experience",
				},
				Examples: []mtp.Example{
					{Description: "Add a work experience", Command: "folio experience add --title \"Backend Engineer\" --company Acme --duration \"2022 - Present\" --type Full-time"},
				},
			},
			"project add": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Description body for the project",
				},
				Examples: []mtp.Example{
					{Description: "Add a project with a cover image", Command: "folio project add --title Folio --image ./cover.png --status completed"},
				},
			},
			"skill add": {
				Examples: []mtp.Example{
					{Description: "Add a skill; proficiency derives from the level", Command: "folio skill add Go --level 82 --category Backend"},
				},
			},
			"skill update": {
				Examples: []mtp.Example{
					{Description: "Re-level a skill", Command: "folio skill update <id> --level 35"},
					{Description: "Set proficiency; the level snaps to its band", Command: "folio skill update <id> --proficiency Intermediate"},
				},
			},
			"message mark": {
				Examples: []mtp.Example{
					{Description: "Mark a message read", Command: "folio message mark <id> read"},
				},
			},
			"export": {
				Examples: []mtp.Example{
					{Description: "Snapshot all content to a directory", Command: "folio export ./backup"},
				},
			},
			"import": {
				Examples: []mtp.Example{
					{Description: "Push a content bundle to the store", Command: "folio import ./backup"},
				},
			},
			"serve": {
				Examples: []mtp.Example{
					{Description: "Run the HTTP API", Command: "folio serve"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}
