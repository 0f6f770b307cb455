package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lifecalc/internal/catalog"
	"github.com/dmitrijs2005/lifecalc/internal/models"
	"github.com/dmitrijs2005/lifecalc/internal/pricing"
)

// maxAttempts bounds how often a single quote re-asks for invalid fields.
const maxAttempts = 3

// Policies prints the catalog grouped by category.
func (a *App) Policies(ctx context.Context) error {
	for _, c := range models.Categories {
		list := catalog.ByCategory(c)
		if len(list) == 0 {
			continue
		}
		printlnFn(fmt.Sprintf("%s [%s]", c.Title(), c))
		for _, p := range list {
			mark := ""
			if p.Product != "" {
				mark = " *"
			}
			printlnFn(fmt.Sprintf("  %s. %s (plan %s, UIN %s)%s", p.ID, p.Name, p.PlanNo, p.UIN, mark))
		}
	}
	printlnFn("* premium estimate available")
	return nil
}

func (a *App) choosePolicy() (models.Policy, error) {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}

	raw, err := getSimpleText(a.reader, "Enter category ("+strings.Join(names, ", ")+")", a.out)
	if err != nil {
		return models.Policy{}, err
	}
	if raw == "" {
		raw = string(models.CategoryEndowment)
	}
	c, err := models.ParseCategory(strings.ToLower(raw))
	if err != nil {
		return models.Policy{}, err
	}

	id, err := getSimpleText(a.reader, "Enter policy number (see 'policies')", a.out)
	if err != nil {
		return models.Policy{}, err
	}
	return catalog.Find(c, id)
}

// Quote asks the logged-in user for a policy and the insured's details and
// prints an estimate. Invalid fields are asked again, up to maxAttempts times
// in total.
func (a *App) Quote(ctx context.Context) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}

	policy, err := a.choosePolicy()
	if err != nil {
		return err
	}

	product := pricing.Product(policy.Product)
	table, err := pricing.TableFor(product)
	if err != nil {
		return err
	}
	minTerm, maxTerm := table.TermRange()

	form := pricing.Form{Product: policy.Product}

	askAge := func() error {
		v, err := getSimpleText(a.reader, "Enter birth date (YYYY-MM-DD) or age in years", a.out)
		if err != nil {
			return err
		}
		form.BirthDate, form.Age = "", ""
		if strings.Contains(v, "-") && len(v) > 3 {
			form.BirthDate = v
		} else {
			form.Age = v
		}
		return nil
	}
	askTerm := func() (err error) {
		form.Term, err = getSimpleText(a.reader, fmt.Sprintf("Enter term in years (%d-%d)", minTerm, maxTerm), a.out)
		return err
	}
	askSumAssured := func() (err error) {
		form.SumAssured, err = getSimpleText(a.reader, "Enter sum assured", a.out)
		return err
	}
	askFrequency := func() error {
		v, err := getSimpleText(a.reader, "Enter payment frequency (annual, monthly, single) [annual]", a.out)
		if err != nil {
			return err
		}
		if v == "" {
			v = string(models.FrequencyAnnual)
		}
		form.Frequency = v
		return nil
	}
	askRiders := func() error {
		v, err := getSimpleText(a.reader, "Enter riders, comma separated ("+strings.Join(models.RiderNames, ", ")+") [none]", a.out)
		if err != nil {
			return err
		}
		form.Riders, err = models.ParseRiders(v)
		return err
	}

	for _, ask := range []func() error{askAge, askTerm, askSumAssured, askFrequency, askRiders} {
		if err := ask(); err != nil {
			return err
		}
	}

	reask := map[string]func() error{
		pricing.FieldBirthDate:  askAge,
		pricing.FieldAge:        askAge,
		pricing.FieldTerm:       askTerm,
		pricing.FieldSumAssured: askSumAssured,
		pricing.FieldFrequency:  askFrequency,
	}

	for attempt := 1; ; attempt++ {
		result, err := pricing.Quote(form, a.now())
		if err == nil {
			a.lastQuote = &quote{policy: policy, result: result}
			printlnFn(pricing.Summary(policy.Name, result))
			printlnFn("Type 'save' to keep this quote.")
			return nil
		}

		var ve *pricing.ValidationError
		if !errors.As(err, &ve) || attempt >= maxAttempts {
			return err
		}
		ask, ok := reask[ve.Field]
		if !ok {
			return err
		}
		printlnFn(ve.Reason)
		if err := ask(); err != nil {
			return err
		}
	}
}

// Save keeps the last quote for the logged-in user.
func (a *App) Save(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}
	if a.lastQuote == nil {
		return errNoQuote
	}

	name, err := getSimpleText(a.reader, "Enter a name for this quote (e.g. the insured's name)", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = a.lastQuote.policy.Name
	}
	gender, err := getSimpleText(a.reader, "Enter gender (optional)", a.out)
	if err != nil {
		return err
	}

	r := a.lastQuote.result
	saved, err := a.calculationService.Save(ctx, user.ID, models.SavedCalculation{
		Name:       name,
		Age:        r.Age,
		Gender:     strings.ToLower(gender),
		SumAssured: r.SumAssured,
		Term:       r.Term,
		Riders:     r.Riders,
		Result:     r.Snapshot(),
		PolicyID:   a.lastQuote.policy.ID,
		CategoryID: a.lastQuote.policy.Category,
		PolicyName: a.lastQuote.policy.Name,
	})
	if err != nil {
		return err
	}

	printlnFn("Saved as", saved.ID)
	return nil
}

// Saved lists the logged-in user's kept quotes.
func (a *App) Saved(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	list, err := a.calculationService.List(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No saved quotes.")
		return nil
	}

	for i, c := range list {
		printlnFn(fmt.Sprintf("%d. %s  %s  %s, age %d, %d years, cover %s: %s %s (%s/year)  [%s]",
			i+1, c.CreatedAt.Local().Format("02 Jan 2006"), c.Name, c.PolicyName, c.Age, c.Term,
			pricing.FormatINR(c.SumAssured), pricing.FormatINR(c.Result.Total), c.Result.Frequency.Label(),
			pricing.FormatINR(c.Result.TotalAnnual), c.ID))
	}
	return nil
}

// Delete removes one of the logged-in user's kept quotes by id.
func (a *App) Delete(ctx context.Context) error {
	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter id of the quote to delete", a.out)
	if err != nil {
		return err
	}

	ok, err := a.calculationService.Delete(ctx, user.ID, id)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("No such saved quote.")
		return nil
	}
	printlnFn("Deleted.")
	return nil
}
