package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/defamation-console/pkg/defamation"
)

func newModelsCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the classification models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			models, err := rt.console.API().FetchModels(cmd.Context())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), rt.output, models)
		},
	}
}

func newClassifyCmd(rt *session) *cobra.Command {
	var (
		modelID int64
		text    string
		payload string
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify text with a model",
		Long:  "Send one classification request. Use --model-id and --text, or --payload to send a raw JSON body as-is.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var id *int64
			if cmd.Flags().Changed("model-id") {
				id = &modelID
			}
			body, err := classifyBody(id, text, payload)
			if err != nil {
				return err
			}
			result, err := rt.console.API().ClassifyText(cmd.Context(), body)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), rt.output, result)
		},
	}

	cmd.Flags().Int64Var(&modelID, "model-id", 0, "model id to classify with")
	cmd.Flags().StringVar(&text, "text", "", "text to classify")
	cmd.Flags().StringVar(&payload, "payload", "", "raw JSON request body (overrides --model-id/--text)")
	return cmd
}

// classifyBody picks the request body: the raw payload when given, else a PredictRequest.
func classifyBody(modelID *int64, text, payload string) (any, error) {
	if payload != "" {
		if !json.Valid([]byte(payload)) {
			return nil, errors.New("--payload is not valid JSON")
		}
		return []byte(payload), nil
	}
	if text == "" {
		return nil, errors.New("either --payload or --text is required")
	}
	return defamation.PredictRequest{ModelID: modelID, Inputs: text}, nil
}

type listFlags struct {
	limit int
	q     string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", defamation.DefaultLimit, "number of records to fetch")
	cmd.Flags().StringVar(&f.q, "q", "", "free-text filter")
}

func newCasesCmd(rt *session) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Show recent case records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := rt.console.API().FetchRecentCases(cmd.Context(), flags.limit, flags.q)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), rt.output, page)
		},
	}
	flags.register(cmd)
	return cmd
}

func newModelCasesCmd(rt *session) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "model-cases",
		Short: "Show recent model classification records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := rt.console.API().FetchRecentModelCases(cmd.Context(), flags.limit, flags.q)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), rt.output, page)
		},
	}
	flags.register(cmd)
	return cmd
}

func newServeCmd(rt *session) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and recent-cases views as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.console.Serve(cmd.Context(), addr); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from DEFAMATION_LISTEN_ADDR)")
	return cmd
}
