package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-research/internal/api/dto"
	"github.com/spec-kit/company-research/internal/domain"
	"github.com/spec-kit/company-research/internal/service"
)

// CompaniesHandler exposes registry lookups.
type CompaniesHandler struct {
	companies *service.CompanyService
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companies *service.CompanyService) *CompaniesHandler {
	return &CompaniesHandler{companies: companies}
}

// List handles GET /companies?name=&limit=&offset=.
func (h *CompaniesHandler) List(c *fiber.Ctx) error {
	name := c.Query("name")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	companies, total, err := h.companies.List(c.UserContext(), name, limit, offset)
	if err != nil {
		return err
	}

	resp := dto.CompanyListResponse{
		Companies: make([]dto.CompanyResponse, 0, len(companies)),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}
	for _, company := range companies {
		resp.Companies = append(resp.Companies, toCompanyResponse(company))
	}
	return c.JSON(resp)
}

// Get handles GET /companies/:corpCode.
func (h *CompaniesHandler) Get(c *fiber.Ctx) error {
	corpCode := c.Params("corpCode")
	if corpCode == "" {
		return fiber.NewError(http.StatusBadRequest, "corp code required")
	}

	company, err := h.companies.Get(c.UserContext(), corpCode)
	if err != nil {
		return err
	}
	return c.JSON(toCompanyResponse(company))
}

// Disclosures handles GET /companies/:corpCode/disclosures?begin=&end=.
// The range defaults to the trailing year.
func (h *CompaniesHandler) Disclosures(c *fiber.Ctx) error {
	corpCode := c.Params("corpCode")
	if corpCode == "" {
		return fiber.NewError(http.StatusBadRequest, "corp code required")
	}

	now := time.Now()
	begin := c.Query("begin", now.AddDate(-1, 0, 0).Format("20060102"))
	end := c.Query("end", now.Format("20060102"))

	disclosures, err := h.companies.Disclosures(c.UserContext(), corpCode, begin, end)
	if err != nil {
		return err
	}

	rows := make([]dto.DisclosureResponse, 0, len(disclosures))
	for _, disclosure := range disclosures {
		rows = append(rows, dto.DisclosureResponse{
			ReceiptNo:   disclosure.ReceiptNo,
			CorpName:    disclosure.CorpName,
			ReportName:  disclosure.ReportName,
			SubmittedBy: disclosure.SubmittedBy,
			ReceiptDate: disclosure.ReceiptDate,
		})
	}
	return c.JSON(fiber.Map{"corp_code": corpCode, "disclosures": rows})
}

func toCompanyResponse(company *domain.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		CorpCode:    company.CorpCode,
		CorpName:    company.CorpName,
		StockCode:   company.StockCode,
		CEOName:     company.CEOName,
		Address:     company.Address,
		Industry:    company.Industry,
		FoundedAt:   company.FoundedAt,
		HomepageURL: company.HomepageURL,
	}
}
