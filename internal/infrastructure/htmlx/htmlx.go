package htmlx

import (
	"strings"

	"golang.org/x/net/html"
)

// TableRows parses an HTML document and returns the trimmed <td> texts
// of every table-body row, one slice per <tr>. Rows outside a tbody are
// ignored; the parser inserts an implicit tbody for bare tables, same
// as a browser would.
func TableRows(doc string) ([][]string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, err
	}

	var rows [][]string
	var walk func(n *html.Node, inBody bool)
	walk = func(n *html.Node, inBody bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "tbody":
				inBody = true
			case "tr":
				if inBody {
					var cells []string
					for c := n.FirstChild; c != nil; c = c.NextSibling {
						if c.Type == html.ElementNode && c.Data == "td" {
							cells = append(cells, strings.TrimSpace(text(c)))
						}
					}
					rows = append(rows, cells)
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inBody)
		}
	}
	walk(root, false)
	return rows, nil
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}
