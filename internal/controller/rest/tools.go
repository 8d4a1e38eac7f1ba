package rest

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"

	"tutordesk/internal/formulas"
)

const (
	qrMinSize = 64
	qrMaxSize = 1024

	scrapeTimeout  = 15 * time.Second
	scrapeMaxLinks = 200
)

func (h *Handlers) registerTools(api fiber.Router) {
	tools := api.Group("/tools")

	tools.Get("/qr", h.generateQR)
	tools.Get("/formulas", h.searchFormulas)
	tools.Get("/formulas/topics", h.formulaTopics)
	tools.Post("/pdf-links", h.scrapePDFLinks)
}

func (h *Handlers) generateQR(c *fiber.Ctx) error {
	data := c.Query("data")
	if data == "" {
		return fiber.NewError(fiber.StatusBadRequest, "data is required")
	}

	size := c.QueryInt("size", 256)
	if size < qrMinSize || size > qrMaxSize {
		return fiber.NewError(fiber.StatusBadRequest, "size must be between 64 and 1024")
	}

	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot encode data")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *Handlers) searchFormulas(c *fiber.Ctx) error {
	return c.JSON(formulas.Search(c.Query("q"), c.Query("topic")))
}

func (h *Handlers) formulaTopics(c *fiber.Ctx) error {
	return c.JSON(formulas.Topics())
}

type scrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type pdfLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// scrapePDFLinks fetches a page and returns every link ending in .pdf,
// resolved against the page URL.
func (h *Handlers) scrapePDFLinks(c *fiber.Ctx) error {
	var req scrapeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	base, err := url.Parse(req.URL)
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") {
		return fiber.NewError(fiber.StatusBadRequest, "url must be http or https")
	}

	client := &http.Client{Timeout: scrapeTimeout}
	resp, err := client.Get(base.String())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "cannot fetch page")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fiber.NewError(fiber.StatusBadGateway, "page returned "+resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "cannot parse page")
	}

	seen := make(map[string]bool)
	links := []pdfLink{}
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		resolved := base.ResolveReference(ref)
		if !strings.HasSuffix(strings.ToLower(resolved.Path), ".pdf") || seen[resolved.String()] {
			return true
		}
		seen[resolved.String()] = true

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title = resolved.Path[strings.LastIndex(resolved.Path, "/")+1:]
		}
		links = append(links, pdfLink{Title: title, URL: resolved.String()})
		return len(links) < scrapeMaxLinks
	})

	return c.JSON(fiber.Map{"source": base.String(), "count": len(links), "links": links})
}
