package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pecoelho01/portfolio/internal/application"
	"github.com/pecoelho01/portfolio/internal/domain/model"
)

func projectsCmd() *cobra.Command {
	var limit int
	var briefs bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the projects the site would render",
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, _, err := newFeed()
			if err != nil {
				return err
			}

			if limit <= 0 {
				limit = feed.Limits().Other
			}

			projects, err := feed.Projects(cmd.Context(), limit)
			if err != nil {
				fmt.Fprintln(os.Stderr, application.StatusMessage(err))
				fmt.Fprintln(os.Stderr, feed.FallbackURL())
				return err
			}

			if len(projects) == 0 {
				fmt.Println("Nenhum projeto público encontrado.")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			header := []string{"Projeto", "Linguagem", "Atualizado", "Tópicos"}
			if briefs {
				header = append(header, "Proposta", "Objetivo")
			}
			table.SetHeader(header)
			table.SetAutoWrapText(false)
			table.SetBorder(false)

			now := time.Now()
			for _, p := range projects {
				table.Append(projectRow(p, now, briefs))
			}
			table.Render()

			fmt.Printf("\n%d projeto(s) de %s\n", len(projects), feed.Account())
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of projects (default: PORTFOLIO_DEFAULT_LIMIT)")
	cmd.Flags().BoolVar(&briefs, "briefs", false, "Include the proposal and objective columns")
	return cmd
}

func projectRow(p model.Project, now time.Time, briefs bool) []string {
	language, ok := model.Present(p.Repo.Language)
	if !ok {
		language = "-"
	}

	row := []string{
		p.Repo.Name,
		language,
		application.RelativeTime(p.Repo.UpdatedAt, now),
		strings.Join(application.CapTopics(p.Repo.Topics), ", "),
	}
	if briefs {
		row = append(row, p.Brief.Proposal, p.Brief.Objective)
	}
	return row
}
