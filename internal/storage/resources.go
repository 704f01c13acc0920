package storage

import (
	"fmt"

	"github.com/Epistemic-Technology/pdfsplit/models"
)

// CalculateResourcePaths generates the resource URIs that expose a recorded run
func CalculateResourcePaths(run *models.SplitRun) []string {
	resourcePaths := []string{
		fmt.Sprintf("split://%s", run.RunID),
		fmt.Sprintf("split://%s/chunks", run.RunID),
	}

	if len(run.Chunks) > 0 {
		resourcePaths = append(resourcePaths,
			fmt.Sprintf("split://%s/chunks/%d", run.RunID, run.Chunks[0].Number),
			fmt.Sprintf("split://%s/chunks/{chunkNumber}", run.RunID),
		)
	}

	return resourcePaths
}
