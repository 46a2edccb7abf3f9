package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/castingdesk/castmatch/internal/ai"
	"github.com/castingdesk/castmatch/internal/ai/gemini"
	"github.com/castingdesk/castmatch/internal/casting"
	"github.com/castingdesk/castmatch/internal/logger"
	"github.com/castingdesk/castmatch/internal/measure"
	"github.com/castingdesk/castmatch/internal/report"
	"github.com/castingdesk/castmatch/internal/roster"
	"github.com/castingdesk/castmatch/internal/secrets"
	"github.com/castingdesk/castmatch/internal/shortlist"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptBreakdown           = "Show field breakdown"
	PromptReportByTalent      = "Report by talent"
	PromptAppendToExcludeFile = "Append shortlist to exclude file"
	PromptShortlistToFile     = "Dump shortlist to file"
	PromptExit                = "Exit"
	PromptBack                = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptBreakdown, PromptReportByTalent, PromptAppendToExcludeFile, PromptShortlistToFile, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the talent roster against the casting brief",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().BoolP("yes", "y", false, "print the shortlist once and exit without the action prompt")
	rankCmd.Flags().StringP("exclude-file", "e", "", "special file with talent to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", rankCmd.Flags().Lookup("exclude-file"))
}

// rank is the main command for the cli.
func rank(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	zlog = logger.WithFields(zlog, logger.StringFields(
		logger.StringField{Key: "command", Value: "rank"},
	)...)

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting the castmatch", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	zlog.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		zlog.Fatal("config is required")
	}

	if config.Roster == "" {
		zlog.Fatal("roster file is required under roster to evaluate talent against the brief")
	}

	for key, label := range config.Labels {
		measure.SetLabel(key, label)
	}

	talent, err := roster.Load(config.Roster)
	if err != nil {
		zlog.Fatal("loading the roster", zap.Error(err))
	}

	zlog.Info("loading the roster", zap.Int("count", talent.Len()))

	if talent.Len() == 0 {
		zlog.Info("exiting", zap.String("reason", "roster is empty"))
		return
	}

	brief, err := resolveBrief(config)
	if err != nil {
		zlog.Fatal("loading the brief", zap.Error(err))
	}

	zlog.Info("starting the match",
		zap.String("gender", string(brief.Gender)),
		zap.Int("requirements", len(brief.Requirements)),
	)

	results := casting.RankTalentForBrief(talent.Items, brief)

	steps, deps := prepareShortlist(ctx, config, brief, zlog)

	list, err := shortlist.Run(ctx, shortlistConfig(config), deps, steps, &shortlist.Results{Items: results})
	if err != nil {
		zlog.Fatal("shortlisting failed", zap.Error(err))
	}

	if list.Len() == 0 {
		zlog.Info("exiting", zap.String("reason", "no talent left after shortlisting"))
		return
	}

	fmt.Println(report.Shortlist(list.Items))

	if cmd.Flag("yes").Value.String() == "true" {
		return
	}

	for {
		zlog.Info("current shortlist", zap.Int("count", list.Len()))

		_, action, err := prompt.Run()
		if err != nil {
			zlog.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, zlog, list); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			zlog.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, zlog *zap.Logger, list *shortlist.Results) error {
	switch action {
	case PromptBreakdown:
		return showBreakdown(list)
	case PromptReportByTalent:
		pretty, _ := json.MarshalIndent(list.ReportByTalent(), "", "  ")
		zlog.Info(string(pretty), zap.Int("talent count", list.Len()))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(zlog, list)
	case PromptShortlistToFile:
		filename, err := list.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump shortlist to file: %w", err)
		}
		zlog.Info("dumping shortlist to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		zlog.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showBreakdown(list *shortlist.Results) error {
	for {
		talentPrompt := promptui.Select{
			Label: "Choose a talent and press ENTER",
			Items: append(list.Names(), PromptBack),
		}

		_, selected, err := talentPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		result := list.FindByName(selected)
		if result == nil {
			return fmt.Errorf("there is no such talent %s", selected)
		}

		fmt.Println(report.Breakdown(result))
	}
}

func appendToExcludeFile(zlog *zap.Logger, list *shortlist.Results) error {
	excludeFile := viper.GetString("exclude-file")
	if excludeFile == "" {
		zlog.Warn("exclude file is not configured",
			zap.String("hint", "set the -e flag or the 'exclude-file' key in the configuration file"),
		)
		return nil
	}

	excluded, err := shortlist.LoadExcluded(excludeFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		excluded = &shortlist.ExcludedTalents{}
	}

	excluded.Append(list.ToExcluded("dismissed from shortlist"))

	if err := excluded.ToFile(excludeFile); err != nil {
		return err
	}

	zlog.Info("appended to exclude file", zap.String("filename", excludeFile))

	list.Remove(excluded.Names())
	return nil
}

func resolveBrief(config *Config) (*casting.Brief, error) {
	if strings.TrimSpace(config.Brief) == "" {
		return casting.DefaultBrief(), nil
	}
	return roster.LoadBrief(config.Brief)
}

func shortlistConfig(config *Config) *shortlist.Config {
	cfg := &shortlist.Config{
		ExcludeFile: viper.GetString("exclude-file"),
	}

	if config.Shortlist != nil {
		cfg.MinScore = config.Shortlist.MinScore
		cfg.Limit = config.Shortlist.Limit
		cfg.KeepGenderMismatch = config.Shortlist.KeepGenderMismatch
	}

	if config.AI != nil {
		cfg.AI = &shortlist.AIConfig{
			Enabled:         config.AI.Enabled,
			Provider:        config.AI.Provider,
			MinimumFitScore: config.AI.MinimumFitScore,
		}
		if config.AI.Gemini != nil {
			cfg.AI.Gemini = &shortlist.GeminiConfig{
				Model:        config.AI.Gemini.Model,
				MaxLogLength: config.AI.Gemini.MaxLogLength,
			}
		}
	}

	return cfg
}

func prepareShortlist(ctx context.Context, config *Config, brief *casting.Brief, zlog *zap.Logger) ([]shortlist.Filter, shortlist.Deps) {
	steps := []shortlist.Filter{
		shortlist.NewGender(),
		shortlist.NewMinScore(),
		shortlist.NewExcludeFile(),
		shortlist.NewAIFit(),
		shortlist.NewLimit(),
	}

	deps := shortlist.Deps{
		Logger: zlog,
		Brief:  brief,
	}

	if config.AI == nil || !config.AI.Enabled {
		shortlist.DisableByName(steps, "ai_fit", "ai is not enabled")
		return steps, deps
	}

	matcher, err := newAIMatcher(ctx, config.AI, zlog)
	if err != nil {
		zlog.Warn("skipping AI step", zap.Error(err))
		shortlist.DisableByName(steps, "ai_fit", err.Error())
		return steps, deps
	}

	deps.Matcher = matcher
	return steps, deps
}

func newAIMatcher(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (ai.Matcher, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	keyFile := cfg.Gemini.APIKeyFile
	if keyFile == "" {
		keyFile = viper.GetString("ai.gemini.api-key-file")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	minScore := cfg.MinimumFitScore
	if minScore < 0 {
		minScore = 0
	}

	matcherLogger := zlog.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
		zap.Float64("minimum_fit_score", minScore),
	)

	return gemini.NewMatcher(generator, minScore, cfg.Gemini.MaxLogLength, matcherLogger), nil
}
