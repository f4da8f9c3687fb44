package generate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luke31A/urlrequest/internal/domain"
)

// ErrInvalidInput is returned for bad tenant ids or IMPL ranges before
// any candidate is built.
var ErrInvalidInput = errors.New("invalid input")

// MaxImplRange bounds how many IMPL tenants one scan may probe.
const MaxImplRange = 50

const idToken = "{id}"

// DataCenter holds the URL templates for one hosting region. Templates
// contain a single {id} placeholder for the tenant id.
type DataCenter struct {
	Name       string
	Production string
	Sandbox    string
}

// DataCenters lists every known hosting region, in probe order. The
// first entry is the primary region used by Generate.
var DataCenters = []DataCenter{
	{"Data Center 1", "https://www.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://impl.workday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 3", "https://wd3.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://wd3-impl.workday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 5", "https://wd5.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://wd5-impl.workday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 10", "https://wd10.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://wd10-impl.workday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 12", "https://wd12.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://impl.wd12.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 102", "https://wd102.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://wd102-impl.workday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 103", "https://wd103.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://wd103-impl.workday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 104", "https://wd104.myworkdaygov.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://wd104-impl.workdaygov.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 105", "https://wd105.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://wd105-impl.workday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 501", "https://wd501.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://wd501-impl.workday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
	{"Data Center 503", "https://wd503.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n", "https://impl.wd503.myworkday.com/wday/authgwy/{id}/login.htmld?redirect=n"},
}

// DataCenterByName returns the template set for a region, or false when
// the name is unknown.
func DataCenterByName(name string) (DataCenter, bool) {
	for _, dc := range DataCenters {
		if dc.Name == name {
			return dc, true
		}
	}
	return DataCenter{}, false
}

// Generate builds the ordered candidate list for the primary data
// center: Production, Sandbox, Preview, CustomerCentral, then
// Impl(implStart..implEnd) ascending. It is pure: same inputs always
// yield the same sequence.
func Generate(tenantID string, implStart, implEnd int) ([]domain.Candidate, error) {
	return GenerateFor(DataCenters[0], tenantID, implStart, implEnd)
}

// GenerateCapped is Generate with an operator-chosen IMPL range cap.
// A cap outside (0, MaxImplRange] falls back to MaxImplRange.
func GenerateCapped(tenantID string, implStart, implEnd, maxRange int) ([]domain.Candidate, error) {
	if maxRange <= 0 || maxRange > MaxImplRange {
		maxRange = MaxImplRange
	}
	if err := validate(tenantID, implStart, implEnd, maxRange); err != nil {
		return nil, err
	}
	return GenerateFor(DataCenters[0], tenantID, implStart, implEnd)
}

// GenerateFor is Generate against an explicit data center's templates.
func GenerateFor(dc DataCenter, tenantID string, implStart, implEnd int) ([]domain.Candidate, error) {
	if err := validate(tenantID, implStart, implEnd, MaxImplRange); err != nil {
		return nil, err
	}

	out := make([]domain.Candidate, 0, 4+implEnd-implStart+1)
	out = append(out,
		domain.Candidate{Environment: domain.EnvProduction, URL: expand(dc.Production, tenantID), DataCenter: dc.Name},
		domain.Candidate{Environment: domain.EnvSandbox, URL: expand(dc.Sandbox, tenantID), DataCenter: dc.Name},
		domain.Candidate{Environment: domain.EnvPreview, URL: expand(suffixTemplate(dc.Sandbox, "_Preview"), tenantID), DataCenter: dc.Name},
		domain.Candidate{Environment: domain.EnvCustomerCentral, URL: expand(suffixTemplate(dc.Sandbox, "_cc"), tenantID), DataCenter: dc.Name},
	)
	for i := implStart; i <= implEnd; i++ {
		out = append(out, domain.Candidate{
			Environment: domain.Impl(i),
			URL:         expand(dc.Sandbox, fmt.Sprintf("%s%d", tenantID, i)),
			DataCenter:  dc.Name,
		})
	}
	return out, nil
}

// ProductionCandidates builds one production candidate per known data
// center, for discovering which region hosts a tenant.
func ProductionCandidates(tenantID string) ([]domain.Candidate, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, fmt.Errorf("%w: empty tenant id", ErrInvalidInput)
	}
	out := make([]domain.Candidate, 0, len(DataCenters))
	for _, dc := range DataCenters {
		out = append(out, domain.Candidate{
			Environment: domain.EnvProduction,
			URL:         expand(dc.Production, tenantID),
			DataCenter:  dc.Name,
		})
	}
	return out, nil
}

func validate(tenantID string, implStart, implEnd, maxRange int) error {
	if strings.TrimSpace(tenantID) == "" {
		return fmt.Errorf("%w: empty tenant id", ErrInvalidInput)
	}
	if implStart < 0 || implEnd < 0 {
		return fmt.Errorf("%w: negative impl range [%d,%d]", ErrInvalidInput, implStart, implEnd)
	}
	if implStart > implEnd {
		return fmt.Errorf("%w: impl range start %d > end %d", ErrInvalidInput, implStart, implEnd)
	}
	if n := implEnd - implStart + 1; n > maxRange {
		return fmt.Errorf("%w: impl range of %d exceeds limit %d", ErrInvalidInput, n, maxRange)
	}
	return nil
}

func expand(template, id string) string {
	return strings.ReplaceAll(template, idToken, id)
}

// suffixTemplate rewrites the /{id}/ path segment so the expanded id
// carries an environment suffix (e.g. acme_Preview).
func suffixTemplate(template, suffix string) string {
	return strings.Replace(template, "/"+idToken+"/", "/"+idToken+suffix+"/", 1)
}
