package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/categorizer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Scores a resume against a job description: skill category match, keyword coverage, compensation fit, and an overall score.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values. Without an API key the analysis runs fully locally.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath    string
	analyzeResume        string
	analyzeResumeURL     string
	analyzeJob           string
	analyzeJobURL        string
	analyzeSalaryMin     string
	analyzeSalaryMax     string
	analyzeRoleSalaryMin string
	analyzeRoleSalaryMax string
	analyzeWeight        float64
	analyzeAPIKey        string
	analyzeDatabaseURL   string
	analyzeVerbose       bool
	analyzeJSON          bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (mutually exclusive with --resume-url)")
	analyzeCommand.Flags().StringVar(&analyzeResumeURL, "resume-url", "", "URL to fetch resume from (mutually exclusive with --resume)")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCommand.Flags().StringVar(&analyzeSalaryMin, "salary-min", "", "Candidate minimum salary (loosely formatted, e.g. \"$95,000\")")
	analyzeCommand.Flags().StringVar(&analyzeSalaryMax, "salary-max", "", "Candidate maximum salary")
	analyzeCommand.Flags().StringVar(&analyzeRoleSalaryMin, "role-salary-min", "", "Posted role minimum salary")
	analyzeCommand.Flags().StringVar(&analyzeRoleSalaryMax, "role-salary-max", "", "Posted role maximum salary")
	analyzeCommand.Flags().Float64Var(&analyzeWeight, "weight", 0, "Weight of category match vs compensation fit, between 0 and 1 exclusive")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw JSON result instead of formatted output")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var; empty runs the local heuristic)")

	// Database URL for analysis history
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
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

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("resume-url") {
		cfg.ResumeURL = analyzeResumeURL
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("salary-min") {
		cfg.SalaryMin = analyzeSalaryMin
	}
	if cmd.Flags().Changed("salary-max") {
		cfg.SalaryMax = analyzeSalaryMax
	}
	if cmd.Flags().Changed("role-salary-min") {
		cfg.RoleSalaryMin = analyzeRoleSalaryMin
	}
	if cmd.Flags().Changed("role-salary-max") {
		cfg.RoleSalaryMax = analyzeRoleSalaryMax
	}
	if cmd.Flags().Changed("weight") {
		cfg.ScoreWeight = analyzeWeight
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Resume == "" && cfg.ResumeURL == "" {
		return fmt.Errorf("either --resume or --resume-url must be provided (via flag or config)")
	}
	if cfg.Resume != "" && cfg.ResumeURL != "" {
		return fmt.Errorf("--resume and --resume-url are mutually exclusive; provide only one")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 5: API key handling; the analysis degrades to the local
	// heuristic without one
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 6: Gather input texts
	var resumeText string
	if cfg.Resume != "" {
		resumeBytes, err := os.ReadFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		resumeText = string(resumeBytes)
	} else {
		if cfg.Verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Fetching resume from: %s\n", cfg.ResumeURL)
		}
		text, err := fetch.PageText(ctx, cfg.ResumeURL, nil)
		if err != nil {
			return err
		}
		resumeText = text
	}

	var jobText string
	if cfg.Job != "" {
		jobBytes, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobText = string(jobBytes)
	} else {
		if cfg.Verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Fetching job posting from: %s\n", cfg.JobURL)
		}
		text, err := fetch.JobText(ctx, cfg.JobURL, nil)
		if err != nil {
			return err
		}
		jobText = text
	}

	// Step 7: Build the categorizer
	var cat categorizer.Categorizer
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		cat = categorizer.NewGemini(client)
	} else {
		if cfg.Verbose {
			_, _ = fmt.Fprintln(os.Stdout, "No API key set, running local heuristic analysis")
		}
		cat = categorizer.NewHeuristic()
	}

	result, err := analyzer.New(cat, cfg.ScoreWeight).Analyze(ctx, analyzer.Request{
		ResumeText:         resumeText,
		JobText:            jobText,
		CandidateSalaryMin: cfg.SalaryMin,
		CandidateSalaryMax: cfg.SalaryMax,
		RoleSalaryMin:      cfg.RoleSalaryMin,
		RoleSalaryMax:      cfg.RoleSalaryMax,
	})
	if err != nil {
		return err
	}

	// Persist best effort when a database is configured
	if cfg.DatabaseURL != "" {
		saveAnalysis(ctx, cfg.DatabaseURL, cfg.JobURL, result)
	}

	if analyzeJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(result)
	fmt.Println()
	fmt.Println(result.Summary)
	return nil
}

// saveAnalysis records the result in the history database. Failures are
// logged and swallowed; the analysis output is already in hand.
func saveAnalysis(ctx context.Context, databaseURL, jobURL string, result *types.AnalysisResult) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		log.Printf("Warning: could not save analysis: %v", err)
		return
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		log.Printf("Warning: could not save analysis: %v", err)
		return
	}

	id, err := database.SaveAnalysis(ctx, db.AnalysisInput{
		JobURL:       jobURL,
		Source:       string(result.Source),
		OverallScore: result.OverallScore,
		MatchScore:   result.MatchScore,
		Result:       result,
	})
	if err != nil {
		log.Printf("Warning: could not save analysis: %v", err)
		return
	}
	log.Printf("Saved analysis %s", id)
}
