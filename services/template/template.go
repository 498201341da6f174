package template

import (
	"html/template"
	"io/fs"
	"path"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	layoutsDir = "layouts"
	viewsDir   = "views"
)

// Manager collects views and compiles each one together with its layout
// into the multitemplate renderer on Init.
type Manager struct {
	re    multitemplate.Renderer
	fs    fs.FS
	funcs template.FuncMap
	views []*View
}

type View struct {
	name   string
	layout string
}

func NewManager(re multitemplate.Renderer, fsys fs.FS) *Manager {
	return &Manager{
		re:    re,
		fs:    fsys,
		funcs: funcs,
	}
}

// RegisterView registers views/<name>.html to be rendered inside
// layouts/<layout>.html.
func (s *Manager) RegisterView(name string, layout string) *View {
	v := &View{
		name:   name,
		layout: layout,
	}
	s.views = append(s.views, v)
	return v
}

func (s *Manager) Init() error {
	for _, v := range s.views {
		files := []string{
			path.Join(layoutsDir, v.layout+".html"),
			path.Join(viewsDir, v.name+".html"),
		}
		t, err := template.New(path.Base(files[0])).Funcs(s.funcs).ParseFS(s.fs, files...)
		if err != nil {
			return errors.Wrapf(err, "failed to parse view %v", v.name)
		}
		s.re.Add(v.name, t)
	}
	return nil
}

func (s *View) HTML(c *gin.Context, code int, data any) {
	c.HTML(code, s.name, data)
}
