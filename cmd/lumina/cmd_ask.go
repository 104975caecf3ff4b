package main

import (
	"fmt"

	"lumina/internal/assistant"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// askCmd sends one question to the personal shopper
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the personal shopper a single question",
	Long: `Sends one question to the assistant with the catalogue as context and
prints the reply. Without a Gemini API key the fallback message is printed.

Example:
  lumina ask "something warm for a reading corner"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	c, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	conv := assistant.NewConversation(newGateway(ctx, c))
	reply, err := conv.Submit(ctx, joinArgs(args))
	if err != nil {
		return err
	}
	logger.Debug("ask answered", zap.String("conversation", conv.ID))

	fmt.Println(reply)
	return nil
}
