package library

// New subjects cycle through these by current subject count.
var themeGradients = []string{
	"linear-gradient(135deg,#F59E0B,#EF4444)",
	"linear-gradient(135deg,#10B981,#059669)",
	"linear-gradient(135deg,#8B5CF6,#6366F1)",
	"linear-gradient(135deg,#F97316,#EF4444)",
	"linear-gradient(135deg,#EC4899,#F43F5E)",
}

var themeIcons = []string{"◆", "★", "◉", "⊕", "≈"}

func themeFor(subjectCount int) (gradient, icon string) {
	i := subjectCount % len(themeGradients)
	return themeGradients[i], themeIcons[i%len(themeIcons)]
}
