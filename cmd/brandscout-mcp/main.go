package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// apiError mirrors the brandscout error body.
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// apiClient talks to a running brandscout HTTP API.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func main() {
	_ = godotenv.Load()

	apiURL := os.Getenv("BRANDSCOUT_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	client := &apiClient{baseURL: apiURL, http: &http.Client{Timeout: 120 * time.Second}}

	s := server.NewMCPServer(
		"brandscout",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	scrapeTool := mcp.NewTool("scrape_brand_info",
		mcp.WithDescription("Scrape a brand's website and return its brand profile: name, logos, color palette, fonts, tone of voice, products, social links, contact details, SEO metadata and detected technologies."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Absolute http(s) URL of the brand's website"),
		),
		mcp.WithString("fetch_mode",
			mcp.Description("How the page is fetched: 'http' (default), 'auto' (render with a browser when the page needs JavaScript) or 'browser'"),
			mcp.Enum("http", "auto", "browser"),
		),
	)
	s.AddTool(scrapeTool, handleScrapeBrandInfo(client))

	analyzeTool := mcp.NewTool("analyze_competitors",
		mcp.WithDescription("Return competitor ad intelligence and recommendations for a brand category in a region."),
		mcp.WithString("brand_category",
			mcp.Required(),
			mcp.Description("Category such as 'bakery-confectionery' or 'restaurant-fast-food'"),
		),
		mcp.WithString("region",
			mcp.Required(),
			mcp.Description("Region key: 'usa', 'europe' or 'asia'"),
		),
		mcp.WithString("platform",
			mcp.Description("Optional platform to focus sample ads on, e.g. 'instagram'"),
		),
	)
	s.AddTool(analyzeTool, handleAnalyzeCompetitors(client))

	generateTool := mcp.NewTool("generate_creative",
		mcp.WithDescription("Generate a localized ad creative (image, copy and match score) for a stored brand and regional profile."),
		mcp.WithString("brand_id",
			mcp.Required(),
			mcp.Description("ID of a brand created through the API"),
		),
		mcp.WithString("regional_profile_id",
			mcp.Required(),
			mcp.Description("ID of a regional profile"),
		),
		mcp.WithString("platform",
			mcp.Required(),
			mcp.Description("Target ad placement"),
			mcp.Enum("instagram_post", "instagram_story", "facebook_post", "tiktok_reel", "twitter_post"),
		),
	)
	s.AddTool(generateTool, handleGenerateCreative(client))

	listBrandsTool := mcp.NewTool("list_brands",
		mcp.WithDescription("List every stored brand, newest first, together with the available regional profiles."),
	)
	s.AddTool(listBrandsTool, handleListBrands(client))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleScrapeBrandInfo(c *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}
		payload := map[string]string{"url": url}
		if mode := request.GetString("fetch_mode", ""); mode != "" {
			payload["fetchMode"] = mode
		}
		return c.toolResult(c.do(ctx, http.MethodPost, "/api/v1/scrape-brand-info", payload))
	}
}

func handleAnalyzeCompetitors(c *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category, err := request.RequireString("brand_category")
		if err != nil {
			return mcp.NewToolResultError("brand_category is required"), nil
		}
		region, err := request.RequireString("region")
		if err != nil {
			return mcp.NewToolResultError("region is required"), nil
		}
		payload := map[string]string{
			"brandCategory": category,
			"region":        region,
			"platform":      request.GetString("platform", ""),
		}
		return c.toolResult(c.do(ctx, http.MethodPost, "/api/v1/analyze-competitors", payload))
	}
}

func handleGenerateCreative(c *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		brandID, err := request.RequireString("brand_id")
		if err != nil {
			return mcp.NewToolResultError("brand_id is required"), nil
		}
		regionID, err := request.RequireString("regional_profile_id")
		if err != nil {
			return mcp.NewToolResultError("regional_profile_id is required"), nil
		}
		platform, err := request.RequireString("platform")
		if err != nil {
			return mcp.NewToolResultError("platform is required"), nil
		}
		payload := map[string]string{
			"brandId":           brandID,
			"regionalProfileId": regionID,
			"platform":          platform,
		}
		return c.toolResult(c.do(ctx, http.MethodPost, "/api/v1/generate-creative", payload))
	}
}

func handleListBrands(c *apiClient) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		brands, err := c.do(ctx, http.MethodGet, "/api/v1/brands", nil)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		regions, err := c.do(ctx, http.MethodGet, "/api/v1/regional-profiles", nil)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		combined, err := json.Marshal(map[string]json.RawMessage{
			"brands":           brands,
			"regionalProfiles": regions,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return c.toolResult(combined, nil)
	}
}

// do calls the API and returns the body of a 2xx response. Error bodies
// are turned into "[CODE] message" errors.
func (c *apiClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("[%s] %s", apiErr.Code, apiErr.Error)
		}
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	return respBody, nil
}

// toolResult pretty-prints a JSON body as the tool's text output.
func (c *apiClient) toolResult(body []byte, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		// Fall back to raw JSON.
		pretty.Write(body)
	}
	return mcp.NewToolResultText(pretty.String()), nil
}
