package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/germanamz/irena/cmd/irena/internal/msgs"
	"github.com/germanamz/irena/pkg/forms"
)

const formWidth = 60

func finishForm(f *huh.Form) *huh.Form {
	f.SubmitCmd = func() tea.Msg { return msgs.FormCompletedMsg{} }
	f.CancelCmd = func() tea.Msg { return msgs.FormAbortedMsg{} }
	return f
}

func newContactForm(v *forms.Contact, width int) *huh.Form {
	subjects := make([]huh.Option[forms.Subject], 0, len(forms.Subjects))
	for _, s := range forms.Subjects {
		subjects = append(subjects, huh.NewOption(s.Label(), s))
	}

	return finishForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Име").
				Value(&v.Name).
				Validate(forms.ValidateName),
			huh.NewInput().
				Title("Имейл").
				Value(&v.Email).
				Validate(forms.ValidateEmail),
			huh.NewInput().
				Title("Телефон").
				Description("по избор").
				Value(&v.Phone).
				Validate(forms.ValidatePhone),
			huh.NewSelect[forms.Subject]().
				Title("Тема").
				Options(subjects...).
				Value(&v.Subject).
				Validate(forms.ValidateSubject),
			huh.NewText().
				Title("Съобщение").
				Value(&v.Message).
				Validate(forms.ValidateMessage),
		),
	).WithWidth(width).WithShowHelp(true))
}

func newNewsletterForm(v *forms.Newsletter, width int) *huh.Form {
	return finishForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Абонирай се за бюлетина").
				Description("Нови колекции и специални предложения, не повече от веднъж месечно.").
				Placeholder("ana@example.com").
				Value(&v.Email).
				Validate(forms.ValidateEmail),
		),
	).WithWidth(width).WithShowHelp(true))
}

// submitCmd sends the completed form in the background.
func submitCmd(ctx context.Context, s *forms.Submitter, kind forms.Kind, contact forms.Contact, newsletter forms.Newsletter) tea.Cmd {
	return func() tea.Msg {
		var (
			r   forms.Receipt
			err error
		)
		switch kind {
		case forms.KindContact:
			r, err = s.SubmitContact(ctx, contact)
		default:
			r, err = s.SubmitNewsletter(ctx, newsletter)
		}
		return msgs.FormSubmittedMsg{Receipt: r, Err: err}
	}
}
