package application

import (
	"fmt"
	"strings"

	"github.com/pecoelho01/portfolio/internal/domain/model"
)

// maxTopics is the number of topics used for synthesis and shown on a card.
const maxTopics = 4

// ProjectBrief derives the proposal/objective pair for repo. An override entry
// for the repository's normalized name wins field by field; fields the
// override leaves empty are synthesized from the repository's own metadata.
func ProjectBrief(repo model.RepositorySummary, overrides model.OverrideTable) model.ProjectBrief {
	brief := model.ProjectBrief{
		Proposal:  synthesizeProposal(repo),
		Objective: synthesizeObjective(repo),
	}

	override, ok := overrides.Lookup(repo.Name)
	if !ok {
		return brief
	}

	if p := strings.TrimSpace(override.Proposal); p != "" {
		brief.Proposal = p
		brief.ProposalOverridden = true
	}
	if o := strings.TrimSpace(override.Objective); o != "" {
		brief.Objective = o
		brief.ObjectiveOverridden = true
	}

	return brief
}

// CapTopics returns the first maxTopics non-empty topics, trimmed, in their
// original order.
func CapTopics(topics []string) []string {
	capped := make([]string, 0, maxTopics)
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		capped = append(capped, t)
		if len(capped) == maxTopics {
			break
		}
	}
	return capped
}

func synthesizeProposal(repo model.RepositorySummary) string {
	if desc, ok := model.Present(repo.Description); ok {
		return desc
	}

	if topics := CapTopics(repo.Topics); len(topics) > 0 {
		return fmt.Sprintf("Projeto centrado em %s.", strings.Join(topics, ", "))
	}

	if lang, ok := model.Present(repo.Language); ok {
		return fmt.Sprintf("Projeto desenvolvido em %s para explorar soluções práticas com a linguagem.", lang)
	}

	return "Projeto pessoal para explorar ideias e praticar desenvolvimento de software."
}

func synthesizeObjective(repo model.RepositorySummary) string {
	lang, hasLang := model.Present(repo.Language)

	if _, ok := model.Present(repo.Homepage); ok {
		if hasLang {
			return fmt.Sprintf("Disponibilizar uma demonstração pública construída com %s para validar a solução na prática.", lang)
		}
		return "Disponibilizar uma demonstração pública para validar a solução na prática."
	}

	if topics := CapTopics(repo.Topics); len(topics) > 0 {
		joined := strings.Join(topics, ", ")
		if hasLang {
			return fmt.Sprintf("Aplicar %s em temas como %s.", lang, joined)
		}
		return fmt.Sprintf("Aprofundar conhecimentos em temas como %s.", joined)
	}

	if hasLang {
		return fmt.Sprintf("Consolidar conhecimentos em %s por meio de um projeto prático.", lang)
	}
	return "Consolidar conhecimentos por meio de um projeto prático."
}
