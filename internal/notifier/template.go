package notifier

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/ahmadqo/posyandu-desa/internal/model"
)

// SubjectPengaduanResponded adalah subjek email tanggapan pengaduan.
const SubjectPengaduanResponded = "Tanggapan Pengaduan Posyandu Desa"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"nl2br": nl2br,
}).ParseFS(templateFS, "templates/*.html"))

// nl2br meng-escape teks lalu mengganti baris baru dengan <br>.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>\n"))
}

type respondedData struct {
	Nama      string
	Subjek    string
	Tanggapan string
	Pengirim  string
}

// Composer merender email notifikasi.
type Composer struct {
	senderName string
}

func NewComposer(senderName string) *Composer {
	if senderName == "" {
		senderName = "Tim Posyandu Desa"
	}
	return &Composer{senderName: senderName}
}

// PengaduanResponded merender email untuk pelapor yang pengaduannya sudah
// ditanggapi.
func (c *Composer) PengaduanResponded(p *model.Pengaduan) (*model.EmailMessage, error) {
	data := respondedData{
		Nama:     p.Nama,
		Subjek:   p.Subjek,
		Pengirim: c.senderName,
	}
	if p.Tanggapan != nil {
		data.Tanggapan = *p.Tanggapan
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "pengaduan_responded.html", data); err != nil {
		return nil, fmt.Errorf("render email pengaduan %d: %w", p.ID, err)
	}

	return &model.EmailMessage{
		To:      p.Email,
		Subject: SubjectPengaduanResponded,
		HTML:    buf.String(),
	}, nil
}
