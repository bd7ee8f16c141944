package catalog

import "github.com/MrEthical07/goRoles/enum"

// Flows
const (
	FlowsView   = "flows_view"
	FlowsEdit   = "flows_edit"
	FlowsLaunch = "flows_launch"
	FlowsDelete = "flows_delete"
)

// Segmentation
const (
	SegmentsViewDefinitions = "segments_view_definitions"
	SegmentsEdit            = "segments_edit"
	SegmentsEditLive        = "segments_edit_live"
	SegmentsDelete          = "segments_delete"
	SegmentsViewStats       = "segments_view_stats"
)

// Results
const (
	ResultsViewFlowResults   = "results_view_flow_results"
	ResultsViewFlowReporting = "results_view_flow_reporting"
	ResultsEdit              = "results_edit"
	ResultsDelete            = "results_delete"
)

// Data import, export and destruction
const (
	DataExportSegments        = "data_export_segments"
	DataExportFlowMemberships = "data_export_flow_memberships"
	DataExportResults         = "data_export_results"
	DataConfigureFeeds        = "data_configure_feeds"
	DataSubmitPrivacyRequests = "data_submit_privacy_requests"
)

// SQL development
const (
	SQLViewDatasets   = "sql_view_datasets"
	SQLSampleDatasets = "sql_sample_datasets"
	SQLEditDatasets   = "sql_edit_datasets"
	SQLDrilldown      = "sql_drilldown"

	// TODO: fold into SQLEditDatasets once no stored role references it.
	SQLConfigureDatasets = "sql_configure_datasets"
)

// Content management
const (
	ContentView   = "content_view"
	ContentEdit   = "content_edit"
	ContentDelete = "content_delete"
)

// Other
const (
	OtherViewDocumentation = "other_view_documentation"
	AdministrateUsers      = "administrate_users"
)

// Integrations
const (
	IntegrationsView = "integrations_view"
	IntegrationsEdit = "integrations_edit"
)

// Organization settings
const (
	OrgSettingsView = "org_settings_view"
	OrgSettingsEdit = "org_settings_edit"
)

// Contacts (single contact view)
const (
	ContactsView = "contacts_view"
)

// Permissions is the closed set of permission identifiers. Declaration order
// fixes mask bit positions, so new members go at the end.
var Permissions = enum.MustNew("PermissionNames", []enum.Member[string]{
	enum.M("FLOWS_VIEW", FlowsView),
	enum.M("FLOWS_EDIT", FlowsEdit),
	enum.M("FLOWS_LAUNCH", FlowsLaunch),
	enum.M("FLOWS_DELETE", FlowsDelete),

	enum.M("SEGMENTS_VIEW_DEFINITIONS", SegmentsViewDefinitions),
	enum.M("SEGMENTS_EDIT", SegmentsEdit),
	enum.M("SEGMENTS_EDIT_LIVE", SegmentsEditLive),
	enum.M("SEGMENTS_DELETE", SegmentsDelete),
	enum.M("SEGMENTS_VIEW_STATS", SegmentsViewStats),

	enum.M("RESULTS_VIEW_FLOW_RESULTS", ResultsViewFlowResults),
	enum.M("RESULTS_VIEW_FLOW_REPORTING", ResultsViewFlowReporting),
	enum.M("RESULTS_EDIT", ResultsEdit),
	enum.M("RESULTS_DELETE", ResultsDelete),

	enum.M("DATA_EXPORT_SEGMENTS", DataExportSegments),
	enum.M("DATA_EXPORT_FLOW_MEMBERSHIPS", DataExportFlowMemberships),
	enum.M("DATA_EXPORT_RESULTS", DataExportResults),
	enum.M("DATA_CONFIGURE_FEEDS", DataConfigureFeeds),
	enum.M("DATA_SUBMIT_PRIVACY_REQUESTS", DataSubmitPrivacyRequests),

	enum.M("SQL_VIEW_DATASETS", SQLViewDatasets),
	enum.M("SQL_SAMPLE_DATASETS", SQLSampleDatasets),
	enum.M("SQL_CONFIGURE_DATASETS", SQLConfigureDatasets),
	enum.M("SQL_EDIT_DATASETS", SQLEditDatasets),
	enum.M("SQL_DRILLDOWN", SQLDrilldown),

	enum.M("CONTENT_VIEW", ContentView),
	enum.M("CONTENT_EDIT", ContentEdit),
	enum.M("CONTENT_DELETE", ContentDelete),

	enum.M("OTHER_VIEW_DOCUMENTATION", OtherViewDocumentation),
	enum.M("ADMINISTRATE_USERS", AdministrateUsers),

	enum.M("INTEGRATIONS_VIEW", IntegrationsView),
	enum.M("INTEGRATIONS_EDIT", IntegrationsEdit),

	enum.M("ORG_SETTINGS_VIEW", OrgSettingsView),
	enum.M("ORG_SETTINGS_EDIT", OrgSettingsEdit),

	enum.M("CONTACTS_VIEW", ContactsView),
}, enum.WithFlavor(enum.SelfNaming), enum.UniqueValues())
