package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze <resume.pdf>",
	Short: "Analyze a resume PDF and print role predictions, skill gaps, and course recommendations",
	Long: `Runs the full analysis over a resume PDF: text extraction -> role prediction -> skill extraction -> gap computation -> course recommendation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeCourses    string
	analyzeTaxonomy   string
	analyzeTopRoles   int
	analyzeTopCourses int
	analyzeJSON       bool
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCommand.Flags().StringVar(&analyzeCourses, "courses", "", "Path to the course corpus CSV")
	analyzeCommand.Flags().StringVar(&analyzeTaxonomy, "taxonomy", "", "Path to a role taxonomy JSON (defaults to the built-in table)")
	analyzeCommand.Flags().IntVar(&analyzeTopRoles, "top-roles", 0, "How many predicted roles get a gap report")
	analyzeCommand.Flags().IntVar(&analyzeTopCourses, "top-courses", 0, "How many courses to recommend per role")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full analysis result as JSON instead of formatted boxes")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("courses") {
		cfg.Courses = analyzeCourses
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = analyzeTaxonomy
	}
	if cmd.Flags().Changed("top-roles") {
		cfg.TopRoles = analyzeTopRoles
	}
	if cmd.Flags().Changed("top-courses") {
		cfg.TopCourses = analyzeTopCourses
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Courses:    "data/courses.csv",
		TopRoles:   pipeline.DefaultTopRoles,
		TopCourses: 5,
	})

	analyzer, err := pipeline.NewAnalyzer(ctx, pipeline.Config{
		CoursesPath:  cfg.Courses,
		TaxonomyPath: cfg.Taxonomy,
		TopRoles:     cfg.TopRoles,
		TopCourses:   cfg.TopCourses,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	result, err := analyzer.AnalyzeFile(ctx, args[0])
	if err != nil {
		return err
	}

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPredictions(result.Predictions)
	printer.PrintSkills(result.Skills)
	printer.PrintGaps(result.Gaps)
	printer.PrintRecommendations(result.Recommendations)
	return nil
}
