// Package cli provides the command line interface.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dirdoc/internal/commands"
	"github.com/temirov/dirdoc/internal/config"
	"github.com/temirov/dirdoc/internal/output"
	"github.com/temirov/dirdoc/internal/services/clipboard"
	"github.com/temirov/dirdoc/internal/tokenizer"
	"github.com/temirov/dirdoc/internal/utils"
)

const (
	outputFlagName  = "output"
	outputShortFlag = "o"
	printFlagName   = "print"
	printShortFlag  = "p"
	configFlagName  = "config"
	tokensFlagName  = "tokens"
	modelFlagName   = "model"

	rootUse              = "dirdoc <directory>"
	rootShortDescription = "Generate a Markdown representation of a directory structure"
	rootLongDescription  = `dirdoc renders the tree of a directory and the contents of its text files as one Markdown document.
Entries matching the literal prefixes listed in the directory's .gitignore are left out.
The report is copied to the clipboard unless --output or --print is given; --output wins over --print.`
	rootUsageExample = `  # Copy a snapshot of the current project to the clipboard
  dirdoc .

  # Write the report to a file
  dirdoc ./service -o service.md

  # Print the report and estimate its token count
  dirdoc ./service -p --tokens`

	outputFlagDescription = "output file to save the report"
	printFlagDescription  = "print the report to stdout"
	configFlagDescription = "configuration file (defaults to ./" + utils.ConfigFileName + ")"
	tokensFlagDescription = "estimate the report's token count"
	modelFlagDescription  = "tokenizer model used for token estimation"
	versionTemplate       = "dirdoc version: {{.Version}}\n"

	reportDeliveredMessage = "report delivered"
	tokenEstimationWarning = "token estimation unavailable"
	destinationLogKey      = "destination"
	sizeLogKey             = "size"
	entriesLogKey          = "entries"
	filesLogKey            = "files"
	skippedLogKey          = "skipped_blank"
	tokensLogKey           = "tokens"
	modelLogKey            = "model"
)

// Dependencies holds collaborators that tests replace.
type Dependencies struct {
	Logger         *zap.Logger
	Clipboard      clipboard.Copier
	CounterFactory tokenizer.Factory
	HomeDirectory  string
}

// reportOptions stores the values of the command flags.
type reportOptions struct {
	outputPath    string
	printReport   bool
	configPath    string
	tokensEnabled bool
	tokenModel    string
}

// Execute runs the dirdoc application.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(Dependencies{
		Logger:         logger,
		Clipboard:      clipboard.NewService(),
		CounterFactory: tokenizer.NewCounter,
	})
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Clipboard == nil {
		dependencies.Clipboard = clipboard.NewService()
	}
	if dependencies.CounterFactory == nil {
		dependencies.CounterFactory = tokenizer.NewCounter
	}
	var options reportOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runReport(command, dependencies, options, arguments[0])
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.Flags().StringVarP(&options.outputPath, outputFlagName, outputShortFlag, "", outputFlagDescription)
	rootCommand.Flags().BoolVarP(&options.printReport, printFlagName, printShortFlag, false, printFlagDescription)
	rootCommand.Flags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().BoolVar(&options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenModel, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	return rootCommand
}

// runReport generates the report for directory and hands it to the selected destination.
func runReport(command *cobra.Command, dependencies Dependencies, options reportOptions, directory string) error {
	logger := dependencies.Logger

	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: options.configPath,
		HomeDirectory:    dependencies.HomeDirectory,
	})
	if configurationError != nil {
		return configurationError
	}

	report, reportError := commands.GenerateReport(directory, commands.ReportOptions{
		Languages: configuration.LanguageTable(),
		Logger:    logger,
	})
	if reportError != nil {
		return reportError
	}

	sink := output.NewSink(command.OutOrStdout(), dependencies.Clipboard)
	destination, deliverError := sink.Deliver(report.Markdown, output.Destination{
		OutputPath: options.outputPath,
		Print:      options.printReport,
	})
	if deliverError != nil {
		return deliverError
	}

	logFields := []zap.Field{
		zap.String(destinationLogKey, destination),
		zap.String(sizeLogKey, utils.FormatReportSize(len(report.Markdown))),
		zap.Int(entriesLogKey, report.EntryCount),
		zap.Int(filesLogKey, report.FileCount),
		zap.Int(skippedLogKey, report.SkippedFiles),
	}
	if tokensEnabled(command, options, configuration) {
		if countResult, countError := countTokens(dependencies.CounterFactory, resolveModel(command, options, configuration), report.Markdown); countError != nil {
			logger.Warn(tokenEstimationWarning, zap.Error(countError))
		} else {
			logFields = append(logFields, zap.Int(tokensLogKey, countResult.Tokens), zap.String(modelLogKey, countResult.Model))
		}
	}
	logger.Info(reportDeliveredMessage, logFields...)
	return nil
}

// tokensEnabled prefers an explicit flag over the configuration file.
func tokensEnabled(command *cobra.Command, options reportOptions, configuration config.ApplicationConfiguration) bool {
	if command.Flags().Changed(tokensFlagName) || configuration.Tokens.Enabled == nil {
		return options.tokensEnabled
	}
	return *configuration.Tokens.Enabled
}

func resolveModel(command *cobra.Command, options reportOptions, configuration config.ApplicationConfiguration) string {
	if command.Flags().Changed(modelFlagName) || configuration.Tokens.Model == "" {
		return options.tokenModel
	}
	return configuration.Tokens.Model
}

func countTokens(factory tokenizer.Factory, model string, text string) (tokenizer.CountResult, error) {
	counter, _, counterError := factory(model)
	if counterError != nil {
		return tokenizer.CountResult{}, counterError
	}
	return tokenizer.CountText(counter, text)
}
