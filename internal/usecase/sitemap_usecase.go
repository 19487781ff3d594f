package usecase

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/logger"
	repo "storefront/internal/repository"
)

// SitemapUsecase は公開ページの絶対URL一覧を組み立てる。
type SitemapUsecase struct {
	brandRepo repo.BrandRepository
	baseURL   string
	log       *logger.Logger
}

func NewSitemapUsecase(brandRepo repo.BrandRepository, baseURL string, log *logger.Logger) *SitemapUsecase {
	return &SitemapUsecase{
		brandRepo: brandRepo,
		baseURL:   strings.TrimRight(baseURL, "/"),
		log:       log,
	}
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// BuildSitemap はsitemap.xmlの本文を返す。
// 固定ページ＋ブランド詳細ページ。URLはBASE_URLからの絶対URL。
func (u *SitemapUsecase) BuildSitemap(ctx context.Context) ([]byte, error) {
	brands, err := u.brandRepo.ListWithProductCounts(ctx)
	if err != nil {
		u.log.Error("sitemap brand query failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "server error")
	}

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: u.baseURL + "/"},
			{Loc: u.baseURL + "/brands"},
		},
	}
	for _, b := range brands {
		set.URLs = append(set.URLs, sitemapURL{
			Loc: fmt.Sprintf("%s/brands/%d", u.baseURL, b.ID),
		})
	}

	body, err := xml.Marshal(set)
	if err != nil {
		u.log.Error("sitemap marshal failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "server error")
	}

	return append([]byte(xml.Header), body...), nil
}
