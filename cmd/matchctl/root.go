package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"placement-engine/internal/config"
	"placement-engine/internal/delivery/http/dto"
	"placement-engine/internal/domain/matching"
	"placement-engine/internal/pkg/logger"
	"placement-engine/internal/pkg/response"
	"placement-engine/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type options struct {
	dataPath      string
	studentID     string
	jobID         string
	matcher       string
	logLevel      string
	minSimilarity float64
	minScore      int
	topN          int
}

// env is what every subcommand needs once flags are parsed.
type env struct {
	ds     *dataset
	engine usecase.Engine
	log    logger.Logger
	ov     usecase.Overrides
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "matchctl",
		Short: "Score a placement dataset offline",
		Long: `matchctl runs the placement engine against a YAML dataset and prints JSON.

Examples:
  matchctl bundle --data dataset.yaml --student 6f1c...
  matchctl fit --data dataset.yaml --student 6f1c... --job 91aa...
  matchctl peers --data dataset.yaml --student 6f1c... --min-similarity 0.4`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.dataPath, "data", "d", "", "path to the YAML dataset")
	pf.StringVarP(&opts.studentID, "student", "s", "", "student id")
	pf.StringVar(&opts.matcher, "matcher", "containment", "skill matcher: containment, exact or alias")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	pf.Float64Var(&opts.minSimilarity, "min-similarity", -1, "override the minimum peer similarity")
	pf.IntVar(&opts.minScore, "min-score", -1, "override the minimum fit score")
	pf.IntVar(&opts.topN, "top-n", 0, "override the result count")
	_ = root.MarkPersistentFlagRequired("data")

	root.AddCommand(newBundleCmd(opts), newFitCmd(opts), newPeersCmd(opts))
	return root
}

func (o *options) env(cmd *cobra.Command) (*env, error) {
	ds, err := loadDataset(o.dataPath)
	if err != nil {
		return nil, err
	}

	mc := config.MatchingConfig{Config: matching.DefaultConfig(), SkillMatcher: o.matcher}
	engineCfg, err := mc.Engine()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{Level: o.logLevel, Format: "text", Output: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}

	var ov usecase.Overrides
	if cmd.Flags().Changed("min-similarity") {
		ov.MinSimilarity = &o.minSimilarity
	}
	if cmd.Flags().Changed("min-score") {
		ov.MinFitScore = &o.minScore
	}
	if cmd.Flags().Changed("top-n") {
		ov.TopN = &o.topN
	}

	return &env{
		ds:     ds,
		engine: usecase.Engine{Config: engineCfg, MatcherName: o.matcher},
		log:    log,
		ov:     ov,
	}, nil
}

func parseID(flag, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, fmt.Errorf("--%s is required", flag)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return id, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type output struct {
	Data        any                   `json:"data"`
	Diagnostics []response.Diagnostic `json:"diagnostics,omitempty"`
}

func newOutput(data any, diags []matching.Diagnostic) output {
	return output{Data: data, Diagnostics: dto.NewMeta(false, diags).Diagnostics}
}

func newBundleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bundle",
		Short: "Build the recommendation bundle for a student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseID("student", opts.studentID)
			if err != nil {
				return err
			}
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}

			uc := usecase.NewRecommendationUsecase(e.ds, e.ds, e.engine, nil, "", 0, nil, e.log)
			b, _, err := uc.GetBundle(cmd.Context(), id, e.ov)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), newOutput(dto.NewBundleResponse(b), b.Diagnostics))
		},
	}
}

func newFitCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Score one student against one job, or rank jobs when --job is omitted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sid, err := parseID("student", opts.studentID)
			if err != nil {
				return err
			}
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}
			uc := usecase.NewJobFitUsecase(e.ds, postings{d: e.ds}, e.engine, nil, e.log)

			if opts.jobID == "" {
				items, diags, err := uc.RecommendJobs(cmd.Context(), sid, e.ov)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), newOutput(dto.NewJobFitResponses(items), diags))
			}

			jid, err := parseID("job", opts.jobID)
			if err != nil {
				return err
			}
			res, err := uc.ScoreJobFit(cmd.Context(), sid, jid)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), newOutput(dto.NewJobFitResponse(res), nil))
		},
	}
	cmd.Flags().StringVarP(&opts.jobID, "job", "j", "", "job id")
	return cmd
}

func newPeersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "peers",
		Short: "Rank the students most similar to a student",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseID("student", opts.studentID)
			if err != nil {
				return err
			}
			e, err := opts.env(cmd)
			if err != nil {
				return err
			}

			uc := usecase.NewPeerUsecase(e.ds, e.engine, nil, e.log)
			res, err := uc.RankPeers(cmd.Context(), id, e.ov)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), newOutput(dto.NewPeerResponses(res.Peers), res.Diagnostics))
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
