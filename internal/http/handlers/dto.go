package handlers

// ProductRequest is the manual-entry payload: the flat shape the capture
// form produces, one optional lot inline.
type ProductRequest struct {
	Codigo          string `json:"codigo"`
	Marca           string `json:"marca"`
	Descripcion     string `json:"descripcion"`
	Unidad          string `json:"unidad"`
	Lote            string `json:"lote"`
	FechaExpiracion string `json:"fechaExpiracion"`
	Empresa         string `json:"empresa"`
	Area            string `json:"area"`
	Presentacion    string `json:"presentacion"`
}

// SaveResult reports a write: the local save always happened when this is
// returned; synced tells whether the remote got it too.
type SaveResult struct {
	Saved     bool   `json:"saved"`
	Synced    bool   `json:"synced"`
	SyncError string `json:"sync_error,omitempty"`
}

type ImportResult struct {
	ImportedProductsCount int                      `json:"imported"`
	RecordCount           int                      `json:"records"`
	Synced                bool                     `json:"synced"`
	SyncError             string                   `json:"sync_error,omitempty"`
	Errors                []ProductValidationError `json:"errors"`
}

type SyncAllResult struct {
	Records int    `json:"records"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

type StatsResult struct {
	Products        int    `json:"products"`
	Lotes           int    `json:"lotes"`
	LastSync        string `json:"last_sync,omitempty"`
	LastSyncOutcome string `json:"last_sync_outcome,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
