package persistence

import (
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

type seedSubject struct {
	id       string
	name     string
	icon     string
	gradient string
	mastery  int
	files    []domain.Document
}

func plain(name string, size int64, date string) domain.Document {
	return domain.NewPlainDocument(name, size, domain.MustDate(date))
}

var defaultCatalog = []seedSubject{
	{
		id: "maths", name: "Mathématiques", icon: "📐",
		gradient: "linear-gradient(135deg,#4E6AFF,#818CF8)", mastery: 78,
		files: []domain.Document{
			plain("Cours_Analyse_CH3.pdf", 2411724, "2026-01-18"),
			plain("TD_Geometrie_Vect.pdf", 1153433, "2026-01-12"),
			plain("Exercices_Integr.pdf", 1003520, "2026-01-05"),
			plain("Suites_et_Series.pdf", 1748019, "2026-01-22"),
			plain("Denombrement_CH1.pdf", 988672, "2026-01-03"),
			plain("Algebre_Lin_CH4.pdf", 2097152, "2026-01-29"),
			plain("Topologie_R.pdf", 1258291, "2026-02-01"),
			plain("Probabilites_CH2.pdf", 1572864, "2026-02-05"),
			plain("Equations_Diff.pdf", 900000, "2026-02-10"),
		},
	},
	{
		id: "physique", name: "Physique-Chimie", icon: "🧲",
		gradient: "linear-gradient(135deg,#06B6D4,#0EA5E9)", mastery: 55,
		files: []domain.Document{
			plain("Thermo_CH2_Cycles.pdf", 3355443, "2026-01-20"),
			plain("Optique_Geometrique.pdf", 1887436, "2026-01-10"),
			plain("Electromag_CH1.pdf", 2621440, "2026-01-15"),
			plain("Mecanique_Fluides.pdf", 1835008, "2026-01-25"),
			plain("Chimie_Cinetique.pdf", 2097152, "2026-02-02"),
			plain("Ondes_Oscillations.pdf", 1258291, "2026-02-08"),
			plain("Optique_Ondulatoire.pdf", 1048576, "2026-02-12"),
		},
	},
	{
		id: "philo", name: "Philosophie", icon: "φ",
		gradient: "linear-gradient(135deg,#A855F7,#EC4899)", mastery: 30,
		files: []domain.Document{
			plain("Kant_Critique_Raison.pdf", 4718592, "2026-01-22"),
			plain("Descartes_Meditations.pdf", 2202009, "2026-01-15"),
			plain("Nietzsche_Morale.pdf", 1887436, "2026-01-08"),
			plain("Platon_Republique.pdf", 3145728, "2026-02-03"),
		},
	},
	{
		id: "info", name: "Informatique", icon: "</>",
		gradient: "linear-gradient(135deg,#22C55E,#16A34A)", mastery: 20,
		files: []domain.Document{
			plain("Algo_Tri_Arbres.pdf", 1572864, "2026-01-17"),
			plain("SQL_BDD_CH2.pdf", 1258291, "2026-01-28"),
			plain("Complexite_Algo.pdf", 786432, "2026-02-06"),
		},
	},
}

// DefaultLibrary returns a fresh copy of the first-run catalog: four
// subjects with sample documents and only "maths" unfolded.
func DefaultLibrary() *domain.Library {
	lib := domain.NewLibrary()
	for i, s := range defaultCatalog {
		subject := &domain.Subject{
			ID:        s.id,
			Name:      s.name,
			Icon:      s.icon,
			Gradient:  s.gradient,
			Mastery:   s.mastery,
			Position:  i,
			Documents: append([]domain.Document(nil), s.files...),
		}
		lib.Subjects[s.id] = subject
	}
	lib.OpenFolders["maths"] = true
	return lib
}

func (s *Service) defaultProgression() domain.Progression {
	return domain.Progression{
		XP:             s.progression.SeedXP,
		Streak:         s.progression.SeedStreak,
		LastActionDate: s.today(),
	}.Normalized(s.progression.XPPerLevel)
}
