package integration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	client       *http.Client
	response     *http.Response
	responseBody string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	s := &StepsContext{tc: tc}
	s.resetClient()
	return s
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		s.resetClient()
		return ctx, s.tc.ResetEntries()
	})

	// Background steps
	sc.Step(`^the journal has no entries$`, s.theJournalHasNoEntries)
	sc.Step(`^I am not logged in$`, s.iAmNotLoggedIn)
	sc.Step(`^I am logged in as the operator$`, s.iAmLoggedInAsTheOperator)

	// Authentication steps
	sc.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, s.iLogInAs)
	sc.Step(`^I log in with no password$`, s.iLogInWithNoPassword)
	sc.Step(`^I log out$`, s.iLogOut)

	// Page steps
	sc.Step(`^I visit the home page$`, s.iVisitTheHomePage)
	sc.Step(`^I visit the detail page for entry (\d+)$`, s.iVisitTheDetailPage)

	// Entry steps
	sc.Step(`^I submit an entry titled "([^"]*)" with text:$`, s.iSubmitAnEntryDocString)
	sc.Step(`^I submit an entry titled "([^"]*)" with text "([^"]*)"$`, s.iSubmitAnEntry)
	sc.Step(`^I submit an entry with only a title "([^"]*)"$`, s.iSubmitAnEntryWithOnlyATitle)
	sc.Step(`^I request the edit form for entry (\d+)$`, s.iRequestTheEditForm)
	sc.Step(`^I submit an edit to entry (\d+) titled "([^"]*)" with text "([^"]*)"$`, s.iSubmitAnEdit)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^I should see "([^"]*)"$`, s.iShouldSee)
	sc.Step(`^I should not see "([^"]*)"$`, s.iShouldNotSee)
	sc.Step(`^the page should contain '([^']*)'$`, s.thePageShouldContain)
	sc.Step(`^the page should not contain '([^']*)'$`, s.thePageShouldNotContain)
}

func (s *StepsContext) resetClient() {
	jar, _ := cookiejar.New(nil)
	s.client = &http.Client{Jar: jar, Timeout: 10 * time.Second}
	s.response = nil
	s.responseBody = ""
}

func (s *StepsContext) record(resp *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	s.response = resp
	s.responseBody = string(body)
	return nil
}

func (s *StepsContext) get(path string) error {
	return s.record(s.client.Get(s.tc.ServerURL + path))
}

func (s *StepsContext) postForm(path string, form url.Values) error {
	return s.record(s.client.PostForm(s.tc.ServerURL+path, form))
}

// Background steps

func (s *StepsContext) theJournalHasNoEntries() error {
	return s.tc.ResetEntries()
}

func (s *StepsContext) iAmNotLoggedIn() error {
	s.resetClient()
	return nil
}

func (s *StepsContext) iAmLoggedInAsTheOperator() error {
	return s.iLogInAs(testUsername, testPassword)
}

// Authentication steps

func (s *StepsContext) iLogInAs(username, password string) error {
	return s.postForm("/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

func (s *StepsContext) iLogInWithNoPassword() error {
	return s.postForm("/login", url.Values{
		"username": {testUsername},
	})
}

func (s *StepsContext) iLogOut() error {
	return s.get("/logout")
}

// Page steps

func (s *StepsContext) iVisitTheHomePage() error {
	return s.get("/")
}

func (s *StepsContext) iVisitTheDetailPage(id int) error {
	return s.get(fmt.Sprintf("/detail/%d", id))
}

// Entry steps

func (s *StepsContext) iSubmitAnEntryDocString(title string, text *godog.DocString) error {
	return s.iSubmitAnEntry(title, text.Content)
}

func (s *StepsContext) iSubmitAnEntry(title, text string) error {
	return s.postForm("/add", url.Values{
		"title": {title},
		"text":  {text},
	})
}

func (s *StepsContext) iSubmitAnEntryWithOnlyATitle(title string) error {
	return s.postForm("/add", url.Values{
		"title": {title},
	})
}

func (s *StepsContext) iRequestTheEditForm(id int) error {
	return s.get(fmt.Sprintf("/edit?id=%d", id))
}

func (s *StepsContext) iSubmitAnEdit(id int, title, text string) error {
	return s.postForm("/edit", url.Values{
		"id":    {fmt.Sprintf("%d", id)},
		"title": {title},
		"text":  {text},
	})
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) iShouldSee(text string) error {
	return s.thePageShouldContain(text)
}

func (s *StepsContext) iShouldNotSee(text string) error {
	return s.thePageShouldNotContain(text)
}

func (s *StepsContext) thePageShouldContain(markup string) error {
	if !strings.Contains(s.responseBody, markup) {
		return fmt.Errorf("expected page to contain %q, body was: %s", markup, s.responseBody)
	}
	return nil
}

func (s *StepsContext) thePageShouldNotContain(markup string) error {
	if strings.Contains(s.responseBody, markup) {
		return fmt.Errorf("expected page not to contain %q", markup)
	}
	return nil
}
