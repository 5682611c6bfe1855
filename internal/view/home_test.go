package view

import (
	"bytes"
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolao/landing/internal/model"
)

func render(t *testing.T, props HomeProps) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Home(props).Render(context.Background(), &buf))
	return buf.String()
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+0", FormatCount(0))
	assert.Equal(t, "+10", FormatCount(10))
	assert.Equal(t, "+1,234", FormatCount(1234))
}

func TestHome_RendersStats(t *testing.T) {
	t.Parallel()

	html := render(t, HomeProps{
		Stats: &model.Stats{
			PoolsCount:   10,
			GuessesCount: 25,
			UsersCount:   100,
			LastUsers: []model.User{
				{ID: "u1", Name: "Ana", AvatarURL: "https://cdn.example.com/ana.png"},
				{ID: "u2", Name: "Bruno"},
			},
		},
		Token: "01HZX3J5R7",
	})

	assert.Contains(t, html, "<span>+10</span><span>Bolões criados</span>")
	assert.Contains(t, html, "<span>+25</span><span>Palpites enviados</span>")
	assert.Contains(t, html, `<span class="highlight">+100</span> pessoas já estão usando`)
	assert.Equal(t, 2, strings.Count(html, "<img"))
	assert.Contains(t, html, `src="https://cdn.example.com/ana.png"`)
	assert.Contains(t, html, `src="`+model.DefaultAvatarURL+`"`)
	assert.Contains(t, html, `name="token" value="01HZX3J5R7"`)
	assert.Contains(t, html, `action="/pools"`)
	assert.Contains(t, html, "required")
	assert.NotContains(t, html, `role="alert"`)
}

func TestHome_EscapesUserContent(t *testing.T) {
	t.Parallel()

	html := render(t, HomeProps{
		Stats: &model.Stats{LastUsers: []model.User{
			{ID: "u1", Name: `<script>alert(1)</script>`, AvatarURL: "javascript:alert(1)"},
		}},
		Title: `"><b>x`,
	})

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "javascript:alert(1)")
	assert.NotContains(t, html, `"><b>x`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestHome_SuccessNotice(t *testing.T) {
	t.Parallel()

	html := render(t, HomeProps{
		Notice:     &Notice{Kind: NoticeSuccess, Message: "ok"},
		InviteCode: "AB12CD",
	})

	assert.Contains(t, html, `class="notice notice-success"`)
	assert.Contains(t, html, `data-invite-code="AB12CD"`)
	assert.Contains(t, html, `value=""`)
	assert.Contains(t, html, `<p data-clipboard-success>ok</p>`)
	assert.Contains(t, html, `<p data-clipboard-failed hidden>`)
}

func TestHome_ErrorNoticeHasNoClipboardHooks(t *testing.T) {
	t.Parallel()

	html := render(t, HomeProps{Notice: &Notice{Kind: NoticeError, Message: "falhou"}})

	assert.NotContains(t, html, "data-clipboard-success")
	assert.NotContains(t, html, "data-clipboard-failed")
}

func TestStaticScriptHidesSuccessWhenCopyFails(t *testing.T) {
	t.Parallel()

	data, err := fs.ReadFile(StaticFS(), "app.js")
	require.NoError(t, err)

	script := string(data)
	assert.Contains(t, script, "[data-clipboard-success]")
	assert.Contains(t, script, "copied.hidden = true")
	assert.Contains(t, script, "hint.hidden = false")
}

func TestHome_ErrorNoticeKeepsTitle(t *testing.T) {
	t.Parallel()

	html := render(t, HomeProps{
		Title:  "World Cup Friends",
		Notice: &Notice{Kind: NoticeError, Message: "falhou"},
	})

	assert.Contains(t, html, `class="notice notice-error"`)
	assert.Contains(t, html, `value="World Cup Friends"`)
	assert.NotContains(t, html, "data-invite-code")
}

func TestHome_AssetPrefixAndAction(t *testing.T) {
	t.Parallel()

	html := render(t, HomeProps{AssetPrefix: ".", FormAction: "https://bolao.example.com/pools"})

	assert.Contains(t, html, `href="./static/app.css"`)
	assert.Contains(t, html, `src="./static/app.js"`)
	assert.Contains(t, html, `action="https://bolao.example.com/pools"`)
	assert.NotContains(t, html, `name="token"`)
}

func TestStaticFS(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"app.js", "app.css"} {
		data, err := fs.ReadFile(StaticFS(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}
}
