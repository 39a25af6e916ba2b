package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/planbalance/internal/assessment"
	"github.com/dshills/planbalance/internal/constraints"
	"github.com/dshills/planbalance/internal/policy"
	"github.com/dshills/planbalance/internal/profile"
	"github.com/dshills/planbalance/internal/render"
	"github.com/dshills/planbalance/internal/runlog"
	"github.com/dshills/planbalance/internal/scenario"
	"github.com/dshills/planbalance/internal/schema"
	"github.com/dshills/planbalance/internal/site"
	"github.com/spf13/cobra"
)

type assessFlags struct {
	format          string
	out             string
	contextPath     string
	constraintsPath string
	mode            string
	profileName     string
	logPath         string
	failBelow       int
	hasFailBelow    bool
	verbose         bool
}

func newAssessCmd() *cobra.Command {
	f := &assessFlags{}

	cmd := &cobra.Command{
		Use:   "assess [scenario-file]",
		Short: "Assess a scenario and produce a scored planning balance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasFailBelow = cmd.Flags().Changed("fail-below")
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runAssess(path, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.contextPath, "context", "", "Policy context YAML file (overrides the scenario's embedded context)")
	flags.StringVar(&f.constraintsPath, "constraints", "", "Constraint table file (CSV or JSON)")
	flags.StringVar(&f.mode, "mode", "auto", "Assessment mode: auto, rules, or table")
	flags.StringVar(&f.profileName, "profile", "", "Built-in scenario name (alternative to a scenario file)")
	flags.StringVar(&f.logPath, "log", "", "Append the run to this JSON log file")
	flags.IntVar(&f.failBelow, "fail-below", 0, "Exit non-zero if the score is below this threshold")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runAssess(scenarioPath string, f *assessFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	// 1. Load scenario (file or built-in profile)
	var s scenario.Site
	scenarioFile := ""
	scenarioHash := ""
	switch {
	case scenarioPath != "":
		verbose("Loading scenario: %s", scenarioPath)
		sc, err := scenario.Load(scenarioPath)
		if err != nil {
			return exitError(3, "failed to load scenario: %v", err)
		}
		s = sc.Site
		scenarioFile = filepath.Base(scenarioPath)
		scenarioHash = sc.Hash
	case f.profileName != "":
		verbose("Loading built-in scenario: %s", f.profileName)
		ps, err := profile.LoadBuiltin(f.profileName)
		if err != nil {
			return exitError(3, "failed to load profile: %v", err)
		}
		s = *ps
		scenarioFile = f.profileName
	default:
		return exitError(3, "a scenario file or --profile is required")
	}

	// 2. Load policy context override
	contextFile := ""
	contextHash := ""
	if f.contextPath != "" {
		verbose("Loading policy context: %s", f.contextPath)
		cf, err := policy.Load(f.contextPath)
		if err != nil {
			return exitError(3, "failed to load context: %v", err)
		}
		s.Context = cf.Context
		contextFile = filepath.Base(f.contextPath)
		contextHash = cf.Hash
	}

	// 3. Derive policy weights
	weights := policy.CalculateWeights(s.Context)
	verbose("Policy weights: housing=%.2f brownfield=%.2f heritage=%.2f",
		weights["housing"], weights["brownfield"], weights["heritage"])

	// 4. Load constraint table; a broken table degrades to zero data
	var table constraints.Table
	if f.constraintsPath != "" {
		verbose("Loading constraint table: %s", f.constraintsPath)
		t, err := constraints.Load(f.constraintsPath)
		if err != nil {
			logger.Printf("Warning: %v (continuing with empty table)", err)
		}
		table = t
	}

	// 5. Choose assessor
	mode, err := resolveMode(f.mode, table)
	if err != nil {
		return exitError(3, "%v", err)
	}
	verbose("Assessment mode: %s", mode)

	// 6. Assess
	var harms, benefits []assessment.Impact
	if mode == "table" {
		harms, benefits = constraints.Assess(s, table)
	} else {
		harms, benefits = site.Assess(s)
	}
	verbose("Derived %d harms, %d benefits", len(harms), len(benefits))

	// 7. Balance
	constraintsFile := ""
	if f.constraintsPath != "" {
		constraintsFile = filepath.Base(f.constraintsPath)
	}
	result := assessment.Balance(harms, benefits, weights)
	result.Tool = "planbalance"
	result.Version = version
	result.Input = assessment.Input{
		ScenarioFile:    scenarioFile,
		ScenarioHash:    scenarioHash,
		ContextFile:     contextFile,
		ContextHash:     contextHash,
		ConstraintsFile: constraintsFile,
		Mode:            mode,
		Profile:         f.profileName,
	}

	// 8. Self-check
	if errs := schema.Validate(&result); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return exitError(5, "assessment result failed schema validation")
	}
	verbose("Validation passed: score=%d tier=%s", result.Score, result.Tier)

	// 9. Output
	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(&result)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	// 10. Run log; failures never sink the assessment
	if f.logPath != "" {
		verbose("Appending run to %s", f.logPath)
		if err := runlog.Open(f.logPath).Append(runlog.NewEntry(&result)); err != nil {
			logger.Printf("Warning: failed to append run log: %v", err)
		}
	}

	// 11. Exit code based on --fail-below
	if f.hasFailBelow && result.Score < f.failBelow {
		return exitError(2, "score %d is below fail threshold %d", result.Score, f.failBelow)
	}

	return nil
}

// resolveMode picks the assessment strategy. Auto mode prefers the
// constraint table whenever it has usable rows.
func resolveMode(mode string, table constraints.Table) (string, error) {
	switch strings.ToLower(mode) {
	case "rules":
		return "rules", nil
	case "table":
		return "table", nil
	case "auto", "":
		if len(table) > 0 {
			return "table", nil
		}
		return "rules", nil
	default:
		return "", fmt.Errorf("unknown mode: %s", mode)
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
