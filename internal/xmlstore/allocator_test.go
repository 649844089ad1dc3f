package xmlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextReportIDEmptyDocument(t *testing.T) {
	assert.Equal(t, 1, NextReportID(""))
	assert.Equal(t, 1, NextReportID("<rapports>\n</rapports>\n"))
}

func TestNextReportIDGapsNotFilled(t *testing.T) {
	doc := `<rapports>
    <rapport id="1"></rapport>
    <rapport id="3"></rapport>
    <rapport id="4"></rapport>
</rapports>`
	assert.Equal(t, 5, NextReportID(doc))
}

func TestNextReportIDIgnoresUnrelatedIDs(t *testing.T) {
	// Bin references inside dechetsCollecte must not feed the allocator.
	doc := `<rapports>
    <rapport id="2">
        <dechetsCollecte>
            <trashCan id="99" quantite="1"/>
        </dechetsCollecte>
    </rapport>
</rapports>`
	assert.Equal(t, 3, NextReportID(doc))
}
