/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	catalogProvider "github.com/wso2/gdpr-notice-generator/internal/catalog/provider"
	catalogService "github.com/wso2/gdpr-notice-generator/internal/catalog/service"
	exportService "github.com/wso2/gdpr-notice-generator/internal/export/service"
	noticeService "github.com/wso2/gdpr-notice-generator/internal/notice/service"
	progressService "github.com/wso2/gdpr-notice-generator/internal/progress/service"
	progressStore "github.com/wso2/gdpr-notice-generator/internal/progress/store"
	questionnaire "github.com/wso2/gdpr-notice-generator/internal/questionnaire/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
	"github.com/wso2/gdpr-notice-generator/internal/system/log"
)

// app carries what the commands need from the environment. Tests replace the openers.
type app struct {
	home        string
	openBackend func(ctx context.Context, home string) (progressService.ProgressServiceInterface,
		catalogService.CatalogServiceInterface, func(), error)
}

func newApp() *app {
	return &app{openBackend: openConfiguredBackend}
}

// openConfiguredBackend bootstraps the configuration under home and opens the configured
// progress store and category catalog.
func openConfiguredBackend(ctx context.Context, home string) (progressService.ProgressServiceInterface,
	catalogService.CatalogServiceInterface, func(), error) {

	cfg, _, err := config.Bootstrap(home)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := log.InitWithWriter(cfg.Log.LogLevel, cfg.Log.Format, os.Stderr); err != nil {
		return nil, nil, nil, err
	}
	store, err := progressStore.OpenProgressStore(ctx, home, *cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open the %s progress store: %w", cfg.Persistence.Driver, err)
	}
	closeStore := func() { _ = store.Close(context.Background()) }
	return progressService.NewProgressService(store), catalogProvider.NewCatalogProvider().GetCatalogService(),
		closeStore, nil
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "noticectl",
		Short:         "Operate on saved GDPR questionnaires",
		Long:          "noticectl exports saved questionnaires and renders their data protection notices.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.home, "home", ".", "Path to the notice generator home directory")

	root.AddCommand(a.newExportCommand(), a.newNoticeCommand(), a.newSanitizeCommand(), a.newListCommand())
	return root
}

type exportFlags struct {
	organization string
	format       string
	sheet        string
	out          string
}

func (a *app) newExportCommand() *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the export of an organization's saved questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.organization, "org", "", "Organization display name")
	f.StringVar(&flags.format, "format", constants.FormatXLSX, "Output format: xlsx, csv or json")
	f.StringVar(&flags.sheet, "sheet", "", "Sheet for csv and json: processing or company")
	f.StringVar(&flags.out, "out", "", "Output file (defaults to the generated file name)")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func (a *app) runExport(ctx context.Context, stdout io.Writer, flags exportFlags) error {

	state, _, closeBackend, err := a.loadState(ctx, flags.organization)
	if err != nil {
		return err
	}
	defer closeBackend()

	file, err := exportService.NewExportService().Render(state, flags.organization, flags.format, flags.sheet)
	if err != nil {
		return err
	}
	out := flags.out
	if out == "" {
		out = file.Name
	}
	if flags.out == "-" {
		_, err := stdout.Write(file.Content)
		return err
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, file.Content, 0o644); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Wrote %s\n", out)
	return err
}

type noticeFlags struct {
	organization string
	plain        bool
	width        int
}

func (a *app) newNoticeCommand() *cobra.Command {
	var flags noticeFlags
	cmd := &cobra.Command{
		Use:   "notice",
		Short: "Render the data protection notice of an organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNotice(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.organization, "org", "", "Organization display name")
	f.BoolVar(&flags.plain, "plain", false, "Print raw markdown instead of rendering it for the terminal")
	f.IntVar(&flags.width, "width", 100, "Word wrap width of the rendered notice")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func (a *app) runNotice(ctx context.Context, stdout io.Writer, flags noticeFlags) error {

	state, catalog, closeBackend, err := a.loadState(ctx, flags.organization)
	if err != nil {
		return err
	}
	defer closeBackend()

	renderer := noticeService.NewNoticeService(catalog)
	markdown := renderer.RenderMarkdown(renderer.Render(state))
	if flags.plain {
		_, err := io.WriteString(stdout, markdown)
		return err
	}
	term, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(flags.width))
	if err != nil {
		return err
	}
	rendered, err := term.Render(markdown)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, rendered)
	return err
}

func (a *app) newSanitizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <organization>",
		Short: "Print the storage partition name of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), progressService.SanitizePartitionName(args[0]))
			return err
		},
	}
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the partitions holding saved progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, _, closeBackend, err := a.openBackend(cmd.Context(), a.home)
			if err != nil {
				return err
			}
			defer closeBackend()

			partitions, err := progress.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, partition := range partitions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					partition.LastUpdated.UTC().Format(constants.ProgressTimestampLayout), partition.PartitionKey)
			}
			return nil
		},
	}
}

// loadState restores an organization's saved questionnaire. Nothing saved is an error here,
// since there is nothing to export.
func (a *app) loadState(ctx context.Context, organization string) (*questionnaire.QuestionnaireState,
	catalogService.CatalogServiceInterface, func(), error) {

	organization = strings.TrimSpace(organization)
	if organization == "" {
		return nil, nil, nil, fmt.Errorf("--org is required")
	}
	progress, catalog, closeBackend, err := a.openBackend(ctx, a.home)
	if err != nil {
		return nil, nil, nil, err
	}
	saved, found, err := progress.Load(ctx, organization)
	if err != nil {
		closeBackend()
		return nil, nil, nil, err
	}
	if !found {
		closeBackend()
		return nil, nil, nil, fmt.Errorf("no saved progress for %q (partition %q)", organization,
			progressService.SanitizePartitionName(organization))
	}
	state := questionnaire.NewQuestionnaireState()
	state.Restore(saved)
	return state, catalog, closeBackend, nil
}
