package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/assessgen/internal/fallback"
	"github.com/abhisek/assessgen/internal/itemgen"
	"github.com/abhisek/assessgen/internal/items"
	"github.com/abhisek/assessgen/internal/llm"
	"github.com/abhisek/assessgen/internal/store"
)

// errGenerationFailed is the only failure message shown to users; details
// go to the log.
var errGenerationFailed = errors.New("generation failed, please retry")

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of assessment items for a topic",
	Example: `  assessgen generate --topic "loop structures" --count 10 --kind true_false
  assessgen generate --topic "SQL joins" --kind all --university "State University" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		kindFlag, _ := cmd.Flags().GetString("kind")
		university, _ := cmd.Flags().GetString("university")
		configPath, _ := cmd.Flags().GetString("config")
		shuffle, _ := cmd.Flags().GetBool("shuffle")
		asJSON, _ := cmd.Flags().GetBool("json")
		noSave, _ := cmd.Flags().GetBool("no-save")

		kinds, err := parseKinds(kindFlag)
		if err != nil {
			return err
		}
		for _, k := range kinds {
			if err := (itemgen.Request{Topic: topic, Count: count, Kind: k}).Validate(); err != nil {
				return err
			}
		}

		cfg := itemgen.DefaultConfig()
		if configPath != "" {
			if cfg, err = itemgen.LoadConfigFile(configPath); err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var st *store.Store
		var events store.EventRepo
		if !noSave {
			if st, err = openStore(cmd); err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()
			events = st.EventRepo()
		}

		provider, err := llm.NewProviderFromEnv(ctx, events, log)
		if err != nil {
			log.Warn("LLM provider unavailable, using template bank", "error", err.Error())
			provider = nil
		}
		if provider == nil {
			fmt.Fprintln(os.Stderr, "No LLM credential configured; items come from the template bank.")
		}

		fbOpts := []fallback.Option{fallback.WithLogger(log)}
		if shuffle {
			seed := uint64(time.Now().UnixNano())
			fbOpts = append(fbOpts, fallback.WithRand(rand.New(rand.NewPCG(seed, seed>>1))))
		}
		orch := itemgen.New(provider, cfg,
			itemgen.WithLogger(log),
			itemgen.WithFallback(fallback.New(fbOpts...)),
		)

		results, err := generateAll(ctx, orch, topic, count, kinds)
		if err != nil {
			if errors.Is(err, itemgen.ErrInvalidRequest) {
				return err
			}
			log.Error("generation failed", "error", err.Error())
			return errGenerationFailed
		}

		out := cmd.OutOrStdout()
		for i, res := range results {
			b := &store.Batch{
				University: university,
				Topic:      strings.TrimSpace(topic),
				Kind:       string(kinds[i]),
				Count:      count,
				Source:     string(res.Source),
				Attempts:   res.Attempts,
			}
			if b.Items, err = json.Marshal(res.Items); err != nil {
				return fmt.Errorf("encode items: %w", err)
			}
			if st != nil {
				if err := st.BatchRepo().Save(ctx, b); err != nil {
					return err
				}
			}

			if asJSON {
				if err := writeBatchJSON(out, b); err != nil {
					return err
				}
				continue
			}
			printBatchHeader(out, b)
			if err := items.WriteSheet(out, res.Items, false); err != nil {
				return err
			}
		}
		return nil
	},
}

// parseKinds maps the --kind flag to the kinds to generate.
func parseKinds(s string) ([]items.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return items.AllKinds, nil
	}
	k, err := items.ParseKind(s)
	if err != nil {
		return nil, err
	}
	return []items.Kind{k}, nil
}

// generateAll runs one request per kind concurrently. Results are in kinds
// order.
func generateAll(ctx context.Context, orch *itemgen.Orchestrator, topic string, count int, kinds []items.Kind) ([]*itemgen.Result, error) {
	results := make([]*itemgen.Result, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			res, err := orch.Generate(gctx, itemgen.Request{Topic: topic, Count: count, Kind: kind})
			if err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printBatchHeader(w io.Writer, b *store.Batch) {
	kind, _ := items.ParseKind(b.Kind)
	fmt.Fprintf(w, "%s: %s (%d items, source %s)\n", kind.Label(), b.Topic, b.Count, b.Source)
	if b.University != "" {
		fmt.Fprintf(w, "%s\n", b.University)
	}
	if b.ID != "" {
		fmt.Fprintf(w, "Batch %s\n", b.ID)
	}
	fmt.Fprintln(w, strings.Repeat("─", 60))
}

func writeBatchJSON(w io.Writer, b *store.Batch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		ID         string          `json:"id,omitempty"`
		University string          `json:"university,omitempty"`
		Topic      string          `json:"topic"`
		Kind       string          `json:"kind"`
		Source     string          `json:"source"`
		Attempts   int             `json:"attempts"`
		Items      json.RawMessage `json:"items"`
	}{b.ID, b.University, b.Topic, b.Kind, b.Source, b.Attempts, b.Items})
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic the items are about")
	generateCmd.Flags().IntP("count", "n", 10, fmt.Sprintf("Number of items per kind (%d-%d)", itemgen.MinCount, itemgen.MaxCount))
	generateCmd.Flags().StringP("kind", "k", "mcq", "Item kind: mcq, fill_blank, true_false or all")
	generateCmd.Flags().StringP("university", "u", "", "University name stored with the batch")
	generateCmd.Flags().String("config", "", "YAML file overriding generation parameters")
	generateCmd.Flags().Bool("shuffle", false, "Shuffle options of some template-bank MCQ items")
	generateCmd.Flags().Bool("json", false, "Print batches as JSON")
	generateCmd.Flags().Bool("no-save", false, "Do not store the batch or LLM events")
	_ = generateCmd.MarkFlagRequired("topic")
}
