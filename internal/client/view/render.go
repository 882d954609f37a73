package view

import (
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"
)

var rowsTemplate = template.Must(template.New("rows").Funcs(template.FuncMap{"icon": icon}).Parse(`{{range .}}<tr>
  <td>{{.Ciudad}}</td>
  <td>{{.Dias}}</td>
  <td>{{.Precio}}</td>
  <td><img src="{{.Banner}}" width="30%"></td>
  <td>{{range .Actions}}<button class="btn-cac" data-action="{{.Kind}}" data-id="{{.ID}}"><i class="fa {{icon .Kind}}"></i></button>{{end}}</td>
</tr>
{{end}}`))

func icon(k ActionKind) string {
	switch k {
	case ActionEdit:
		return "fa-pencil"
	case ActionDelete:
		return "fa-trash"
	}
	return ""
}

// RenderHTML writes the <tr> elements of the #list-table-paquetes tbody.
// Actions are declared through data-action and data-id attributes.
func RenderHTML(w io.Writer, rows []Row) error {
	return rowsTemplate.Execute(w, rows)
}

// RenderText writes rows as an aligned plain-text table.
func RenderText(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCIUDAD\tDIAS\tPRECIO\tBANNER")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Ciudad, r.Dias, r.Precio, r.Banner)
	}
	return tw.Flush()
}
