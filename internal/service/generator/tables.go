package generator

import (
	"slices"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// FallbackSubject is used for subjects without canned content.
const FallbackSubject = "maths"

var summaries = map[string]domain.SummaryContent{
	"maths": {
		Chapter: "Algèbre Linéaire : Espaces Vectoriels",
		Summary: "L'étude des structures vectorielles est le pilier de l'algèbre en prépa. " +
			"Tout repose sur la notion de combinaison linéaire et de liberté des familles.",
		KeyPoints: []string{
			"Vérifier les 3 axiomes pour montrer qu'un ensemble est un sous-espace vectoriel (SEV).",
			"La dimension d'un espace est le cardinal de n'importe quelle base.",
			"Théorème du rang : dim(E) = dim(ker f) + rg(f).",
		},
		Formula: "dim(F+G) = dim(F) + dim(G) - dim(F ∩ G)",
		Warning: "Attention à ne pas confondre 'famille génératrice' (assez de vecteurs) et " +
			"'famille libre' (pas de vecteurs de trop) !",
	},
	"physique": {
		Chapter: "Électromagnétisme : Équations de Maxwell",
		Summary: "Les équations de Maxwell décrivent comment les champs électriques et magnétiques " +
			"sont générés et modifiés par les charges et les courants.",
		KeyPoints: []string{
			"Maxwell-Gauss : décrit la source du champ E (les charges).",
			"Maxwell-Faraday : montre qu'un champ B variable crée un champ E.",
			"Maxwell-Ampère : montre qu'un courant ou un champ E variable crée un champ B.",
		},
		Formula: "∇ · B = 0 (Flux du champ magnétique nul)",
		Warning: "N'oubliez jamais le terme de 'courant de déplacement' dans Maxwell-Ampère, " +
			"c'est l'erreur classique en concours !",
	},
}

var expertSheets = map[string]domain.ExpertSheet{
	"maths": {
		Chapter: "Espaces Vectoriels & Applications Linéaires",
		Context: "Ce chapitre fonde l'algèbre linéaire. L'enjeu est de passer de la vision géométrique " +
			"(vecteurs du plan) à une vision abstraite (fonctions, suites, matrices) pour résoudre des systèmes complexes.",
		Theorems: []string{
			"Théorème de la base incomplète : Dans un EV de dimension finie, toute famille libre peut être complétée en une base.",
			"Théorème du rang : Pour f ∈ L(E,F), dim(E) = dim(ker f) + rg(f). C'est l'outil n°1 pour trouver la dimension d'un noyau.",
			"Caractérisation des isomorphismes : f est un isomorphisme ssi f transforme une base de E en une base de F.",
		},
		Methods: []string{
			"Pour montrer qu'un ensemble est un SEV, vérifiez toujours la stabilité par combinaison linéaire (λu + v).",
			"Pour déterminer une base de Ker(f), résolvez le système f(x)=0 et exprimez les variables liées en fonction des variables libres.",
			"Utilisez la liberté d'une famille pour prouver l'unicité des coefficients d'une décomposition.",
		},
		Errors: []string{
			"Confondre la dimension de l'espace avec le nombre de vecteurs d'une famille quelconque.",
			"Affirmer que Ker(f) = {0} implique la surjectivité sans vérifier que les espaces de départ et d'arrivée ont la même dimension finie.",
			"Oublier de préciser que l'espace est de dimension finie avant d'appliquer le théorème du rang.",
		},
	},
	"physique": {
		Chapter: "Thermodynamique : Cycles & Machines",
		Context: "L'enjeu est de modéliser les conversions d'énergie thermique en travail mécanique, " +
			"base de toute l'industrie motrice et frigorifique mondiale.",
		Theorems: []string{
			"Premier Principe : ΔU + ΔEc = W + Q. L'énergie globale se conserve, elle ne fait que changer de forme.",
			"Second Principe : ΔS_syst = S_ech + S_cree, avec S_cree ≥ 0. Définit le sens d'évolution irréversible des phénomènes.",
			"Identités thermodynamiques : dU = TdS - PdV et dH = TdS + VdP.",
		},
		Methods: []string{
			"Pour un cycle, commencez toujours par ΔU_cycle = 0 pour trouver le lien entre W_tot et Q_tot.",
			"Identifiez le type de transformation (adiabatique, isobare...) pour choisir la bonne loi d'état (Laplace, Gaz parfaits).",
			"Tracez systématiquement le cycle dans un diagramme de Watt (P,V) pour visualiser le signe du travail.",
		},
		Errors: []string{
			"Confondre la température T (en Kelvin) et t (en Celsius) dans les calculs de rendement.",
			"Oublier que le travail W est compté positivement s'il est reçu par le système (convention récepteur).",
			"Appliquer les lois de Laplace (PV^γ = cste) pour une transformation qui n'est pas réversible.",
		},
	},
}

// Tables is the fixed subject → content mapping. The zero value is ready to use.
type Tables struct{}

// Summary returns the canned summary for a subject, falling back to maths.
func (Tables) Summary(subjectID string) domain.SummaryContent {
	c, ok := summaries[subjectID]
	if !ok {
		c = summaries[FallbackSubject]
	}
	c.KeyPoints = slices.Clone(c.KeyPoints)
	return c
}

// ExpertSheet returns the canned revision sheet for a subject, falling back to maths.
func (Tables) ExpertSheet(subjectID string) domain.ExpertSheet {
	sheet, ok := expertSheets[subjectID]
	if !ok {
		sheet = expertSheets[FallbackSubject]
	}
	sheet.Theorems = slices.Clone(sheet.Theorems)
	sheet.Methods = slices.Clone(sheet.Methods)
	sheet.Errors = slices.Clone(sheet.Errors)
	return sheet
}
