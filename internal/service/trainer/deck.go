package trainer

import (
	"slices"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

var defaultDeck = []domain.Card{
	{
		Level:    "Niveau 3",
		Subject:  "Physique-Chimie · MP*",
		Question: "Donner la forme locale de l'équation de Maxwell-Faraday dans le vide.",
		Hint:     "💡 Relie le rotationnel du champ électrique à la variation temporelle du champ magnétique.",
		Answer:   "rot E = −∂B/∂t",
		Detail: "Le rotationnel du champ électrique est égal à l'opposé de la dérivée temporelle du champ magnétique. " +
			"C'est la loi de Faraday sous forme locale.",
	},
	{
		Level:    "Niveau 2",
		Subject:  "Mathématiques · MP*",
		Question: "Énoncer le théorème de Rolle.",
		Hint:     "💡 Conditions : continuité sur [a,b], dérivabilité sur ]a,b[, et valeurs égales aux extrémités.",
		Answer:   "∃ c ∈ ]a,b[ : f'(c) = 0",
		Detail: "Si f est continue sur [a,b], dérivable sur ]a,b[ et f(a) = f(b), " +
			"alors il existe au moins un point c où la dérivée s'annule.",
	},
	{
		Level:    "Niveau 1",
		Subject:  "Philosophie · MP*",
		Question: "Quelle est la distinction kantienne entre phénomène et noumène ?",
		Hint:     "💡 Pense à la limite de notre connaissance sensible selon la Critique de la Raison Pure.",
		Answer:   "Phénomène = ce qui apparaît ; Noumène = la chose en soi",
		Detail: "Le phénomène est l'objet tel qu'il nous apparaît via nos formes a priori de la sensibilité. " +
			"Le noumène est la réalité en soi, inconnaissable par l'entendement humain.",
	},
}

// DefaultDeck returns a copy of the built-in deck.
func DefaultDeck() []domain.Card {
	return slices.Clone(defaultDeck)
}
