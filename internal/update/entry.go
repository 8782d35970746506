package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/form"
	"github.com/sandeepkv93/taskdash/internal/views"
)

const formFieldCount = 4

func (m *Model) openForm() {
	if m.Form.IsOpen() {
		return
	}
	m.Form, _ = form.Transition(m.Form, form.OpenAction())
	m.resetFormInputs()
	m.focusFormField(views.FieldTitle)
	m.Status = StatusBar{Text: "add task", IsError: false}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.FormCancel):
		m.Form, _ = form.Transition(m.Form, form.EscapeAction())
		m.resetFormInputs()
		m.Status = StatusBar{Text: "add task cancelled", IsError: false}
		return m, nil
	case key.Matches(msg, m.Keys.FormClose):
		m.Form, _ = form.Transition(m.Form, form.CancelAction())
		m.resetFormInputs()
		m.Status = StatusBar{Text: "add task cancelled", IsError: false}
		return m, nil
	case key.Matches(msg, m.Keys.FormNext):
		m.focusFormField((m.formField + 1) % formFieldCount)
		return m, nil
	case key.Matches(msg, m.Keys.FormPrev):
		m.focusFormField((m.formField + formFieldCount - 1) % formFieldCount)
		return m, nil
	case key.Matches(msg, m.Keys.FormSubmit):
		m.submitForm()
		return m, nil
	case msg.Type == tea.KeyEnter && m.formField != views.FieldDescription:
		m.submitForm()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.formField {
	case views.FieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case views.FieldDescription:
		m.descArea, cmd = m.descArea.Update(msg)
	case views.FieldPriority:
		draft := m.Form.Draft
		switch {
		case key.Matches(msg, m.Keys.PriorityNext):
			draft.Priority = draft.Priority.Next()
		case key.Matches(msg, m.Keys.PriorityPrev):
			draft.Priority = draft.Priority.Prev()
		}
		m.Form, _ = form.Transition(m.Form, form.EditAction(draft))
		return m, nil
	case views.FieldDueDate:
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	m.Form, _ = form.Transition(m.Form, form.EditAction(m.draftFromInputs()))
	return m, cmd
}

func (m *Model) submitForm() {
	m.Form, _ = form.Transition(m.Form, form.EditAction(m.draftFromInputs()))
	next, in := form.Transition(m.Form, form.SubmitAction())
	m.Form = next
	if in == nil {
		if next.Err != nil {
			m.setValidationError(next.Err)
		}
		return
	}
	task := m.Board.Append(*in)
	m.resetFormInputs()
	m.SelectedTaskID = task.ID
	m.Status = StatusBar{Text: fmt.Sprintf("task added: %s", task.Title), IsError: false}
	m.notify("Task", m.Status.Text, "info")
}

func (m Model) draftFromInputs() form.Draft {
	return form.Draft{
		Title:       m.titleInput.Value(),
		Description: m.descArea.Value(),
		Priority:    m.Form.Draft.Priority,
		DueDate:     m.dueInput.Value(),
	}
}

func (m *Model) resetFormInputs() {
	m.titleInput.Reset()
	m.descArea.Reset()
	m.dueInput.Reset()
	m.titleInput.Blur()
	m.descArea.Blur()
	m.dueInput.Blur()
	m.formField = views.FieldTitle
}

func (m *Model) focusFormField(field int) {
	m.formField = field
	m.titleInput.Blur()
	m.descArea.Blur()
	m.dueInput.Blur()
	switch field {
	case views.FieldTitle:
		m.titleInput.Focus()
	case views.FieldDescription:
		m.descArea.Focus()
	case views.FieldDueDate:
		m.dueInput.Focus()
	}
}

func (m Model) renderFormView() string {
	errText := ""
	if m.Form.Err != nil {
		errText = m.Form.Err.Error()
	}
	return views.RenderForm(views.FormData{
		TitleView:       m.titleInput.View(),
		DescriptionView: m.descArea.View(),
		Priority:        string(m.Form.Draft.Priority),
		DueView:         m.dueInput.View(),
		FocusedField:    m.formField,
		ErrorText:       errText,
	})
}
