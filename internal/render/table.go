package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mohsinali45213/folio/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func ExperienceTable(experiences []model.Experience) string {
	if len(experiences) == 0 {
		return "No experiences yet."
	}
	rows := make([][]string, len(experiences))
	for i, e := range experiences {
		rows[i] = []string{e.ID, e.Title, e.Company, e.Duration, string(e.Type)}
	}
	return renderTable([]string{"ID", "Title", "Company", "Duration", "Type"}, rows)
}

func ProjectTable(projects []model.Project) string {
	if len(projects) == 0 {
		return "No projects yet."
	}
	rows := make([][]string, len(projects))
	for i, p := range projects {
		featured := ""
		if p.Featured {
			featured = "*"
		}
		rows[i] = []string{p.ID, p.Title, StatusBadge(p.Status), featured, p.Tech}
	}
	return renderTable([]string{"ID", "Title", "Status", "Featured", "Tech"}, rows)
}

func SkillTable(skills []model.Skill) string {
	if len(skills) == 0 {
		return "No skills yet."
	}
	rows := make([][]string, len(skills))
	for i, s := range skills {
		rows[i] = []string{s.ID, s.Name, s.Category, strconv.Itoa(s.Level), ProficiencyBadge(s.Proficiency)}
	}
	return renderTable([]string{"ID", "Name", "Category", "Level", "Proficiency"}, rows)
}

func CertificateTable(certificates []model.Certificate) string {
	if len(certificates) == 0 {
		return "No certificates yet."
	}
	rows := make([][]string, len(certificates))
	for i, c := range certificates {
		verified := ""
		if c.Verified {
			verified = "yes"
		}
		rows[i] = []string{c.ID, c.Title, c.Issuer, c.Date, verified}
	}
	return renderTable([]string{"ID", "Title", "Issuer", "Date", "Verified"}, rows)
}

func MessageTable(messages []model.ContactMessage) string {
	if len(messages) == 0 {
		return "No messages yet."
	}
	rows := make([][]string, len(messages))
	for i, m := range messages {
		date := ""
		if !m.CreatedAt.IsZero() {
			date = m.CreatedAt.Format("2006-01-02 15:04")
		}
		rows[i] = []string{m.ID, m.Name, m.Email, StatusText(m.Status), date}
	}
	return renderTable([]string{"ID", "From", "Email", "Status", "Received"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
