package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/bolao/landing/internal/model"
)

// Notice kinds.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a flash message shown above the form.
type Notice struct {
	Kind    string
	Message string
}

// HomeProps is everything the landing page needs to render.
type HomeProps struct {
	Stats *model.Stats
	// Form state
	Title      string
	Token      string
	FormAction string
	// Outcome of the last submission, if any
	Notice     *Notice
	InviteCode string
	// AssetPrefix is prepended to /static paths; empty for the server.
	AssetPrefix string
}

// Home renders the full landing page.
func Home(props HomeProps) templ.Component {
	if props.Stats == nil {
		props.Stats = &model.Stats{}
	}
	if props.FormAction == "" {
		props.FormAction = "/pools"
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}

		p.raw(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<title>NLW Copa | Crie seu bolão</title>`)
		p.raw(`<link rel="stylesheet"`)
		p.attr("href", props.AssetPrefix+"/static/app.css")
		p.raw(`><script defer`)
		p.attr("src", props.AssetPrefix+"/static/app.js")
		p.raw(`></script></head><body><main>`)

		p.raw(`<h1>Crie seu próprio bolão da copa e compartilhe entre amigos!</h1>`)

		p.component(ctx, UsersStrip(props.Stats.LastUsers, props.Stats.UsersCount))
		p.component(ctx, CreateForm(props.FormAction, props.Title, props.Token))

		p.raw(`<p>Após criar seu bolão, você receberá um código único que poderá usar para convidar outras pessoas 🚀</p>`)

		if props.Notice != nil {
			p.component(ctx, NoticeBanner(*props.Notice, props.InviteCode))
		}

		p.component(ctx, Counters(props.Stats.PoolsCount, props.Stats.GuessesCount))

		p.raw(`</main></body></html>`)
		return p.err
	})
}

// UsersStrip renders the avatars of the last users and the user counter.
func UsersStrip(users []model.User, usersCount int64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}

		p.raw(`<div class="users"><div class="avatars">`)
		for i, user := range users {
			if i == model.MaxLastUsers {
				break
			}
			p.raw(`<img`)
			p.attr("src", string(templ.URL(user.Avatar())))
			p.attr("alt", user.Name)
			p.attr("data-user-id", user.ID)
			p.raw(`>`)
		}
		p.raw(`</div><strong><span class="highlight">`)
		p.text(FormatCount(usersCount))
		p.raw(`</span> pessoas já estão usando</strong></div>`)

		return p.err
	})
}

// CreateForm renders the pool creation form. The title input is required
// so browsers block empty submissions before they are sent.
func CreateForm(action, title, token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}

		p.raw(`<form method="post" data-pool-form`)
		p.attr("action", string(templ.URL(action)))
		p.raw(`><input type="text" name="title" required maxlength="120" placeholder="Qual o nome do seu bolão?"`)
		p.attr("value", title)
		p.raw(`>`)
		if token != "" {
			p.raw(`<input type="hidden" name="token"`)
			p.attr("value", token)
			p.raw(`>`)
		}
		p.raw(`<button type="submit">Criar meu bolão</button></form>`)

		return p.err
	})
}

// NoticeBanner renders the submission outcome. A non-empty code is exposed
// to the page script, which copies it to the clipboard or, failing that,
// replaces the success message with a manual-copy hint.
func NoticeBanner(n Notice, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}

		p.raw(`<div role="alert"`)
		p.attr("class", "notice notice-"+n.Kind)
		p.raw(`>`)
		if code != "" {
			// The script swaps this message for the manual-copy hint when
			// the browser refuses the clipboard write.
			p.raw(`<p data-clipboard-success>`)
		} else {
			p.raw(`<p>`)
		}
		p.text(n.Message)
		p.raw(`</p>`)
		if code != "" {
			p.raw(`<output class="code"`)
			p.attr("data-invite-code", code)
			p.raw(`>`)
			p.text(code)
			p.raw(`</output><p data-clipboard-failed hidden>Bolão criado! Não foi possível copiar o código, copie manualmente.</p>`)
		}
		p.raw(`</div>`)

		return p.err
	})
}

// Counters renders the pools and guesses counters.
func Counters(poolsCount, guessesCount int64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{w: w}

		p.raw(`<div class="counters"><div class="counter"><span>`)
		p.text(FormatCount(poolsCount))
		p.raw(`</span><span>Bolões criados</span></div><div class="counter"><span>`)
		p.text(FormatCount(guessesCount))
		p.raw(`</span><span>Palpites enviados</span></div></div>`)

		return p.err
	})
}
