// Command assistant runs the interactive Company Research Assistant.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/krish2213/company-research-assistant/internal/agent"
	"github.com/krish2213/company-research-assistant/internal/classifier"
	"github.com/krish2213/company-research-assistant/internal/config"
	"github.com/krish2213/company-research-assistant/internal/model"
	"github.com/krish2213/company-research-assistant/internal/research"
	"github.com/krish2213/company-research-assistant/internal/state"
)

var (
	exitCommands = map[string]bool{"exit": true, "quit": true, "bye": true, "goodbye": true, "q": true}
	helpCommands = map[string]bool{"help": true, "?": true, "h": true}
)

var welcomeStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Padding(0, 2).
	Width(64)

func welcomeBanner() string {
	return welcomeStyle.Render(strings.Join([]string{
		"COMPANY RESEARCH ASSISTANT",
		"",
		"I help you research companies and create Account Plans.",
		"",
		"What I can do:",
		"• Research any company using available data",
		"• Generate structured Account Plans",
		"• Update plan sections based on your feedback",
		"",
		"Commands: 'help', 'show plan', 'exit'",
	}, "\n"))
}

func helpScreen() string {
	return strings.Join([]string{
		"HOW TO USE THIS ASSISTANT",
		"",
		"RESEARCH A COMPANY:",
		`  • "Research Microsoft"`,
		`  • "Tell me about Apple"`,
		`  • Just type a company name like "Tesla"`,
		"",
		"VIEW YOUR ACCOUNT PLAN:",
		`  • "Show plan"`,
		`  • "Display the account plan"`,
		"",
		"UPDATE A SECTION:",
		`  • "Update risks with: Supply chain concerns"`,
		`  • "Change competitors to: Microsoft, Google, Meta"`,
		"",
		"OTHER COMMANDS:",
		`  • "help" - Show this help message`,
		`  • "exit" or "quit" - End the conversation`,
	}, "\n")
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Research companies and build Account Plans from a chat session",
		Long: `Company Research Assistant - an interactive agent that researches
companies and builds five-section Account Plans you can review and update.

Requires GROQ_API_KEY in the environment or a .env file.
Set DEBUG=true for per-turn state summaries.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "assistant.toml", "path to the configuration file")
	return cmd
}

func run(configPath string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		fmt.Println("❌ ERROR: GROQ_API_KEY environment variable not set.")
		fmt.Println("Please create a .env file with your Groq API key:")
		fmt.Println("  GROQ_API_KEY=your_api_key_here")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	defer logger.Sync()

	modelCfg := model.DefaultGroqConfig(apiKey)
	modelCfg.BaseURL = cfg.Model.BaseURL
	modelCfg.Model = cfg.Model.Name
	modelCfg.MaxTokens = cfg.Model.MaxTokens
	modelCfg.Timeout = cfg.ModelTimeout()
	modelCfg.Logger = logger.Named("model")

	assistant := agent.New(&agent.Config{
		Model: model.NewGroqClient(modelCfg),
		Lookup: research.NewClient(&research.Config{
			Timeout:   cfg.ResearchTimeout(),
			UserAgent: cfg.Research.UserAgent,
			Logger:    logger.Named("research"),
		}),
		Logger: logger,
	})

	chat(assistant, cfg)
	return nil
}

func chat(assistant *agent.Agent, cfg *config.Config) {
	session := state.New()
	ctx := context.Background()

	fmt.Println(welcomeBanner())
	displayResponse("Hello! 👋 I'm your Company Research Assistant.\nWhich company would you like me to research today?")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			// EOF ends the session like an explicit exit.
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if len(input) > cfg.Chat.MaxMessageLength {
			fmt.Printf("⚠️ Message too long. Please keep it under %d characters.\n", cfg.Chat.MaxMessageLength)
			continue
		}

		lowered := strings.ToLower(classifier.CleanText(input))
		if exitCommands[lowered] {
			displayResponse(assistant.Process(ctx, session, "goodbye"))
			break
		}
		if helpCommands[lowered] {
			fmt.Println(helpScreen())
			continue
		}

		displayResponse(assistant.Process(ctx, session, input))

		if cfg.Debug {
			fmt.Println("\n" + strings.Repeat("=", 40))
			fmt.Println("DEBUG: State Summary")
			fmt.Println(strings.Repeat("=", 40))
			fmt.Println(session.Summary())
			fmt.Println(strings.Repeat("=", 40) + "\n")
		}
	}

	fmt.Println("\nThank you for using Company Research Assistant! 👋")
}

func displayResponse(response string) {
	fmt.Printf("\n🤖 Assistant: %s\n\n", response)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
