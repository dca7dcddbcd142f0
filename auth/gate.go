// Package auth contém o portão de acesso por grupo. É função pura de
// propósito: o middleware monta o CallerContext a partir da sessão e o
// handler nunca vê uma sessão viva.
package auth

// CallerContext descreve quem está chamando: autenticado ou não, e com
// quais grupos.
type CallerContext struct {
	Authenticated bool
	Groups        []string
}

type DecisionKind int

const (
	DecisionAllowed DecisionKind = iota
	DecisionNotLoggedIn
	DecisionForbidden
)

type Decision struct {
	Kind   DecisionKind
	Reason string
}

func (d Decision) Allowed() bool { return d.Kind == DecisionAllowed }

// Decide aplica o portão: não autenticado e sem grupo exigido recebem
// recusas distintas, com as mesmas mensagens que o usuário final vê.
func Decide(caller CallerContext, required []string) Decision {
	if !caller.Authenticated {
		return Decision{Kind: DecisionNotLoggedIn, Reason: "Você não está logado!"}
	}
	if len(required) == 0 {
		return Decision{Kind: DecisionAllowed}
	}
	for _, need := range required {
		for _, g := range caller.Groups {
			if g == need {
				return Decision{Kind: DecisionAllowed}
			}
		}
	}
	return Decision{Kind: DecisionForbidden, Reason: "Você não possui permissão!"}
}
