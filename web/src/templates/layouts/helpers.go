package layouts

// AppName is shown in every page title.
const AppName = "Stat Frames"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + AppName
	}
	return AppName
}
