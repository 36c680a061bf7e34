package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"quoterelay/internal/models"
	"quoterelay/internal/repositories"
)

const dealSearchLimit = 100

var (
	dealSearchProperties = []string{
		models.PropObjectID,
		models.PropOwnerID,
		models.PropJobNumber,
		models.PropDealName,
		models.PropCurrencyCode,
		models.PropAmount,
	}
	repSearchProperties = []string{
		models.PropMainPhone,
		models.PropAdditionalPhone,
		models.PropFamilyName,
		models.PropGivenName,
		models.PropEmail,
		models.PropOwnerID,
	}
	contactProperties = []string{"firstname", "lastname"}
	companyProperties = []string{"name"}
)

// CRMClient is the subset of the HubSpot API the quote flow needs.
type CRMClient interface {
	SearchObjects(ctx context.Context, objectType string, req models.SearchRequest) (*models.SearchResult, error)
	GetAssociations(ctx context.Context, fromType, fromID, toType string) (*models.AssociationPage, error)
	GetObject(ctx context.Context, objectType, id string, properties []string) (*models.SimpleObject, error)
	UpdateObject(ctx context.Context, objectType, id string, properties map[string]string) (json.RawMessage, error)
}

type QuoteService struct {
	CRM         CRMClient
	OwnerCache  repositories.OwnerCacheRepository // nil disables caching
	Concurrency int
}

func NewQuoteService(crm CRMClient, ownerCache repositories.OwnerCacheRepository, concurrency int) *QuoteService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &QuoteService{CRM: crm, OwnerCache: ownerCache, Concurrency: concurrency}
}

// DealSearchRequest selects deals whose job_number lies in [n, n+1).
func DealSearchRequest(jobNumber float64) models.SearchRequest {
	return models.SearchRequest{
		FilterGroups: []models.FilterGroup{{
			Filters: []models.Filter{
				{PropertyName: models.PropJobNumber, Operator: models.OperatorGTE, Value: FormatJobNumber(jobNumber)},
				{PropertyName: models.PropJobNumber, Operator: models.OperatorLT, Value: FormatJobNumber(jobNumber + 1)},
			},
		}},
		Properties: dealSearchProperties,
		Limit:      dealSearchLimit,
	}
}

// BuildQuoteCandidates searches deals for a job number and enriches each one
// with its contact, company and sales rep. Output keeps search order; any
// failed enrichment fails the whole batch.
func (s *QuoteService) BuildQuoteCandidates(ctx context.Context, jobNumber float64) ([]models.QuoteCandidate, error) {
	res, err := s.CRM.SearchObjects(ctx, models.ObjectDeals, DealSearchRequest(jobNumber))
	if err != nil {
		return nil, err
	}

	candidates := make([]models.QuoteCandidate, 0, len(res.Results))
	for _, deal := range res.Results {
		if deal == nil {
			continue
		}
		candidates = append(candidates, models.NewQuoteCandidate(deal))
	}
	log.Printf("[quote][build] job=%s deals=%d", FormatJobNumber(jobNumber), len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for i := range candidates {
		i := i
		g.Go(func() error {
			return s.enrichCandidate(gctx, &candidates[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (s *QuoteService) enrichCandidate(ctx context.Context, q *models.QuoteCandidate) error {
	var contacts, companies *models.AssociationPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = s.CRM.GetAssociations(gctx, models.ObjectDeals, q.DealID, models.ObjectContacts)
		return err
	})
	g.Go(func() error {
		var err error
		companies, err = s.CRM.GetAssociations(gctx, models.ObjectDeals, q.DealID, models.ObjectCompanies)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	q.Contact = ""
	if id, ok := ResolvePrimaryAssociation(contacts, models.AssociationDealToContactPrimary); ok {
		q.ContactID = &id
		contact, err := s.CRM.GetObject(ctx, models.ObjectContacts, strconv.FormatInt(id, 10), contactProperties)
		if err != nil {
			return err
		}
		q.Contact = contact.Properties["firstname"] + " " + contact.Properties["lastname"]
	}

	q.Company = ""
	if id, ok := ResolvePrimaryAssociation(companies, models.AssociationDealToCompanyPrimary); ok {
		q.CompanyID = &id
		company, err := s.CRM.GetObject(ctx, models.ObjectCompanies, strconv.FormatInt(id, 10), companyProperties)
		if err != nil {
			return err
		}
		q.Company = company.Properties["name"]
	}

	rep, err := s.lookupRep(ctx, q.TrescoRepID)
	if err != nil {
		return fmt.Errorf("deal %s: %w", q.DealID, err)
	}
	q.TrescoRep = rep.FullName()
	q.TrescoRepName = rep.FullName()
	q.TrescoRepPhone = rep.Phone
	q.TrescoRepEmail = rep.Email
	return nil
}

func (s *QuoteService) lookupRep(ctx context.Context, ownerID string) (*models.SalesRep, error) {
	if s.OwnerCache != nil {
		if rep, ok := s.OwnerCache.Get(ctx, ownerID); ok {
			return rep, nil
		}
	}

	req := models.SearchRequest{
		FilterGroups: []models.FilterGroup{{
			Filters: []models.Filter{
				{PropertyName: models.PropOwnerID, Operator: models.OperatorEQ, Value: ownerID},
			},
		}},
		Properties: repSearchProperties,
		Limit:      dealSearchLimit,
	}
	res, err := s.CRM.SearchObjects(ctx, models.ObjectUsers, req)
	if err != nil {
		return nil, err
	}
	if len(res.Results) == 0 || res.Results[0] == nil {
		return nil, fmt.Errorf("%w: owner %q", ErrRepNotFound, ownerID)
	}

	rep := models.SalesRepFromProperties(res.Results[0].Properties)
	if s.OwnerCache != nil {
		if err := s.OwnerCache.Set(ctx, ownerID, rep); err != nil {
			log.Printf("[quote][owner-cache] set owner=%s: %v", ownerID, err)
		}
	}
	return rep, nil
}

// UpdateDealAmount rounds amount to cents and writes it to the deal's amount
// property. The raw HubSpot response is returned unchanged.
func (s *QuoteService) UpdateDealAmount(ctx context.Context, dealID string, amount decimal.Decimal) (json.RawMessage, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return nil, ErrMissingDealID
	}
	rounded := RoundAmount(amount)
	log.Printf("[quote][amount] deal=%s amount=%s", dealID, rounded.StringFixed(2))
	return s.CRM.UpdateObject(ctx, models.ObjectDeals, dealID, map[string]string{
		models.PropAmount: rounded.StringFixed(2),
	})
}
