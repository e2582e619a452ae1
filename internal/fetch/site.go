package fetch

import (
	"net/url"
	"strings"
)

// Site represents a known job board or ATS platform.
type Site string

const (
	// SiteLinkedIn is linkedin.com job postings
	SiteLinkedIn Site = "linkedin"
	// SiteIndeed is indeed.com job postings
	SiteIndeed Site = "indeed"
	// SiteGreenhouse is the Greenhouse ATS platform
	SiteGreenhouse Site = "greenhouse"
	// SiteLever is the Lever ATS platform
	SiteLever Site = "lever"
	// SiteUnknown is an unrecognized site
	SiteUnknown Site = "unknown"
)

// DetectSite identifies the job board from a posting URL.
func DetectSite(urlStr string) Site {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return SiteUnknown
	}

	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "linkedin.com"):
		return SiteLinkedIn
	case strings.Contains(host, "indeed.com"):
		return SiteIndeed
	case strings.Contains(host, "greenhouse.io"):
		return SiteGreenhouse
	case strings.Contains(host, "lever.co"):
		return SiteLever
	}
	return SiteUnknown
}

// SiteContentSelectors returns description selectors for a site.
func SiteContentSelectors(site Site) []string {
	switch site {
	case SiteLinkedIn:
		return []string{
			".jobs-box__html-content",
			".job-details-jobs-unified-top-card__job-description",
			".description__text",
			"main",
		}
	case SiteIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			"main",
		}
	case SiteGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			"#content",
		}
	case SiteLever:
		return []string{
			".posting-page",
			".posting-description",
			".content",
		}
	default:
		return genericPostingSelectors()
	}
}

// genericPostingSelectors covers boards without dedicated handling.
func genericPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// SiteNoiseSelectors returns noise exclusion selectors for a site.
func SiteNoiseSelectors(site Site) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",

		".voluntary-disclosure",
		".eeo-statement",
		".legal-disclosure",
		".self-identification",

		".social-share",
		".share-buttons",

		".cookie-consent",
		".gdpr-notice",
	}

	switch site {
	case SiteLinkedIn:
		return append(common,
			".similar-jobs",
			".people-also-viewed",
			".top-card-layout__cta-container",
		)
	case SiteIndeed:
		return append(common,
			"#mosaic-belowFullJobDescription",
			".jobsearch-OtherJobs",
			"#applyButtonLinkContainer",
		)
	case SiteGreenhouse:
		return append(common,
			".application--wrapper",
			".post-apply",
		)
	case SiteLever:
		return append(common,
			".apply-section",
			".posting-apply",
		)
	default:
		return common
	}
}
