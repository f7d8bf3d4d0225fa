package rendering

import "fmt"

// documentShell wraps the rendered section blocks in a standalone HTML page
// with print-friendly base styles, for PDF export and direct serving.
const documentShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
  body { font-family: Georgia, "Times New Roman", serif; color: #1a1a2e; margin: 0 auto; max-width: 52rem; padding: 1.5rem; }
  .resume-name { margin-bottom: 0.1rem; }
  .resume-headline { font-size: 1.1rem; font-weight: 600; color: #444; }
  .resume-contact { font-size: 0.85rem; color: #555; margin-top: 0.3rem; }
  .section-title { border-bottom: 1px solid #999; padding-bottom: 0.2rem; margin-top: 1.2rem; }
  .experience-item { margin-bottom: 0.9rem; }
  .experience-title { font-weight: 700; }
  .experience-dates { font-size: 0.85rem; color: #555; }
  .off-target { opacity: 0.85; }
  .highlight-source { color: #777; font-size: 0.85rem; }
</style>
</head>
<body>
%s
</body>
</html>
`

// Document wraps rendered blocks in a full HTML page titled after the
// candidate.
func Document(title, body string) string {
	return fmt.Sprintf(documentShell, EscapeHTML(title), body)
}
