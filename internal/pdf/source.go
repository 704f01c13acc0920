package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/Epistemic-Technology/zotero/zotero"

	"github.com/Epistemic-Technology/pdfsplit/models"
)

// ZoteroCredentials identify the Zotero library attachments are fetched from
type ZoteroCredentials struct {
	APIKey    string
	LibraryID string
}

// GetData retrieves the raw PDF for a source. Exactly one of the source
// fields must be set.
func GetData(ctx context.Context, sourceInfo models.SourceInfo, creds ZoteroCredentials) (models.PdfData, error) {
	set := 0
	for _, v := range []string{sourceInfo.Path, sourceInfo.URL, sourceInfo.ZoteroID} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return nil, errors.New("no data provided")
	}
	if set > 1 {
		return nil, errors.New("only one of path, url or zotero_id may be provided")
	}

	var data models.PdfData
	var err error
	switch {
	case sourceInfo.Path != "":
		data, err = os.ReadFile(sourceInfo.Path)
	case sourceInfo.URL != "":
		data, err = GetFromURL(ctx, sourceInfo.URL)
	default:
		data, err = GetFromZotero(ctx, sourceInfo.ZoteroID, creds.APIKey, creds.LibraryID)
	}
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errors.New("no data retrieved")
	}
	return data, nil
}

// GetFromURL fetches PDF data from a URL
func GetFromURL(ctx context.Context, url string) (models.PdfData, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// GetFromZotero fetches an attachment file from a Zotero library
func GetFromZotero(ctx context.Context, zoteroID string, apiKey string, libraryID string) (models.PdfData, error) {
	if apiKey == "" || libraryID == "" {
		return nil, errors.New("ZOTERO_API_KEY and ZOTERO_LIBRARY_ID must be set to fetch from Zotero")
	}
	client := zotero.NewClient(libraryID, zotero.LibraryTypeUser, zotero.WithAPIKey(apiKey))
	data, err := client.File(ctx, zoteroID)
	if err != nil {
		return nil, err
	}
	return data, nil
}
