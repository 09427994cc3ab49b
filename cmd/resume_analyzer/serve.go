package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis, session retrieval, and course recommendation.`,
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveCourses    string
	serveTaxonomy   string
	serveTopRoles   int
	serveTopCourses int
	serveDBURL      string
	serveSessionTTL int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveCourses, "courses", "", "Path to the course corpus CSV")
	serveCmd.Flags().StringVar(&serveTaxonomy, "taxonomy", "", "Path to a role taxonomy JSON (defaults to the built-in table)")
	serveCmd.Flags().IntVar(&serveTopRoles, "top-roles", 0, "How many predicted roles get a gap report")
	serveCmd.Flags().IntVar(&serveTopCourses, "top-courses", 0, "How many courses to recommend per role")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL for session persistence (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().IntVar(&serveSessionTTL, "session-ttl", 0, "Minutes before a stored session expires")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("courses") {
		cfg.Courses = serveCourses
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = serveTaxonomy
	}
	if cmd.Flags().Changed("top-roles") {
		cfg.TopRoles = serveTopRoles
	}
	if cmd.Flags().Changed("top-courses") {
		cfg.TopCourses = serveTopCourses
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDBURL
	}
	if cmd.Flags().Changed("session-ttl") {
		cfg.SessionTTLMinutes = serveSessionTTL
	}

	// Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Courses:           "data/courses.csv",
		TopRoles:          pipeline.DefaultTopRoles,
		TopCourses:        5,
		Port:              8080,
		SessionTTLMinutes: int(session.DefaultTTL / time.Minute),
	})

	// Database URL is optional; without it sessions live in memory
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	analyzer, err := pipeline.NewAnalyzer(context.Background(), pipeline.Config{
		CoursesPath:  cfg.Courses,
		TaxonomyPath: cfg.Taxonomy,
		TopRoles:     cfg.TopRoles,
		TopCourses:   cfg.TopCourses,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize analyzer: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		SessionTTL:  time.Duration(cfg.SessionTTLMinutes) * time.Minute,
		Analyzer:    analyzer,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
