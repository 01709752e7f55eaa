package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/model"
	"github.com/mohsinali45213/folio/internal/render"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Manage the contact inbox",
}

var messageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		if unread, _ := cmd.Flags().GetBool("unread"); unread {
			fmt.Println(render.MessageTable(services.UnreadMessages()))
			return nil
		}
		fmt.Println(render.MessageTable(services.Messages()))
		return nil
	},
}

var messageShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := services.Message(args[0])
		if err != nil {
			return err
		}

		fields := []string{
			render.Field("ID", msg.ID),
			render.Field("Email", msg.Email),
			render.Field("Status", render.StatusText(msg.Status)),
		}
		if !msg.CreatedAt.IsZero() {
			fields = append(fields, render.Field("Received", msg.CreatedAt.Format("2006-01-02 15:04:05")))
		}
		fmt.Print(render.EntityHeader("From "+msg.Name, fields))
		fmt.Println()
		fmt.Println(msg.Message)

		// Opening a message reads it.
		if msg.Status == model.MessageUnread {
			if _, err := forms.MarkMessage(msg.ID, model.MessageRead); err != nil {
				fmt.Printf("warning: could not mark message read: %v\n", err)
			}
		}
		return nil
	},
}

var messageMarkCmd = &cobra.Command{
	Use:   "mark <id> <unread|read|replied>",
	Short: "Set a message's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := forms.MarkMessage(args[0], model.MessageStatus(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("Marked message %s %s\n", msg.ID, msg.Status)
		return nil
	},
}

var messageDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := services.Message(args[0])
		if err != nil {
			return err
		}
		if err := forms.DeleteMessage(*msg); err != nil {
			return err
		}
		fmt.Printf("Deleted message %s\n", msg.ID)
		return nil
	},
}

func init() {
	messageListCmd.Flags().Bool("unread", false, "only unread messages")
	messageDeleteCmd.Flags().Bool("force", false, "skip confirmation")

	messageCmd.AddCommand(messageListCmd)
	messageCmd.AddCommand(messageShowCmd)
	messageCmd.AddCommand(messageMarkCmd)
	messageCmd.AddCommand(messageDeleteCmd)
	rootCmd.AddCommand(messageCmd)
}
