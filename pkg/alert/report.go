package alert

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/expiry"
	"Crenza-Backend/pkg/pantry"
	"bytes"
	"html/template"
)

const Subject = "CRENZA: prodotti in scadenza"

var reportTemplate = template.Must(template.New("report").Parse(`<h2>Prodotti in scadenza</h2>
<p>Finestra di avviso: {{.AlertDays}} giorni.</p>
<table>
<tr><th>Dispensa</th><th>Prodotto</th><th>Scadenza</th><th>Stato</th></tr>
{{range .Lines}}<tr><td>{{.Pantry}}</td><td>{{.Name}}</td><td>{{.Expiry}}</td><td>{{if eq .Status "expired"}}Scaduto{{else}}In scadenza{{end}}</td></tr>
{{end}}</table>
`))

// BuildReport lists near and expired items of every pantry, each pantry in
// display order.
func BuildReport(inv *pantry.Inventory, classifier expiry.Classifier) []domain.ExpiryReportLine {
	lines := []domain.ExpiryReportLine{}
	for _, p := range inv.Pantries {
		for _, it := range pantry.SortForDisplay(p.Items) {
			status := classifier.Status(it.Expiry)
			if status != expiry.StatusNear && status != expiry.StatusExpired {
				continue
			}
			lines = append(lines, domain.ExpiryReportLine{
				Pantry: p.Name,
				Name:   it.Name,
				Expiry: it.Expiry.Format(domain.DateLayout),
				Status: string(status),
			})
		}
	}
	return lines
}

func RenderReport(lines []domain.ExpiryReportLine, alertDays int) (string, error) {
	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, struct {
		AlertDays int
		Lines     []domain.ExpiryReportLine
	}{alertDays, lines})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
