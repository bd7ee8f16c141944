package catalog

import (
	"cdr.dev/slog/v3"

	goRoles "github.com/MrEthical07/goRoles"
	"github.com/MrEthical07/goRoles/permission"
)

// Role names.
const (
	FlowsViewer                = "flows_viewer"
	FlowsUser                  = "flows_user"
	SegmentationViewer         = "segmentation_viewer"
	SegmentationUser           = "segmentation_user"
	ResultsViewer              = "results_viewer"
	ResultsUser                = "results_user"
	DataUser                   = "data_user"
	SQLViewer                  = "sql_viewer"
	SQLUser                    = "sql_user"
	SQLDeveloper               = "sql_developer"
	ContentViewer              = "content_viewer"
	ContentUser                = "content_user"
	DocumentationViewer        = "documentation_viewer"
	UsersManagement            = "users_management"
	IntegrationsViewer         = "integrations_viewer"
	IntegrationsUser           = "integrations_user"
	OrganizationSettingsViewer = "organization_settings_viewer"
	OrganizationSettingsUser   = "organization_settings_user"
	ContactsViewer             = "contacts_viewer"
	OrgAdmin                   = "org_admin"
	OrgUser                    = "org_user"
	OrgViewer                  = "org_viewer"
	Custom                     = "custom"
)

// Role groups.
const (
	// FrontendGroup lists the roles offered when assigning a user in the UI.
	FrontendGroup = "frontend"
	// OrgGroup lists the organization-wide super-roles.
	OrgGroup = "org"
)

// roles is ordered so that every parent precedes its children.
var roles = []goRoles.RoleSpec{
	{
		Name:        FlowsViewer,
		Description: "Can view flows.",
		Grants:      permission.Grants{FlowsView: true},
	},
	{
		Name:        FlowsUser,
		Description: "Can modify, launch and delete flows. Also a flows viewer.",
		Parents:     []string{FlowsViewer},
		Grants: permission.Grants{
			FlowsEdit:   true,
			FlowsLaunch: true,
			FlowsDelete: true,
		},
	},
	{
		Name:        SegmentationViewer,
		Description: "Can view segment stats.",
		Grants:      permission.Grants{SegmentsViewStats: true},
	},
	{
		Name:        SegmentationUser,
		Description: "Can modify segments and view segment definitions. Also a segmentation viewer.",
		Parents:     []string{SegmentationViewer},
		Grants: permission.Grants{
			SegmentsViewDefinitions: true,
			SegmentsEdit:            true,
			SegmentsEditLive:        true,
			SegmentsDelete:          true,
		},
	},
	{
		Name:        ResultsViewer,
		Description: "Can view flow results and reporting.",
		Grants: permission.Grants{
			ResultsViewFlowResults:   true,
			ResultsViewFlowReporting: true,
		},
	},
	{
		Name:        ResultsUser,
		Description: "Can create and delete results and reporting.",
		Parents:     []string{ResultsViewer},
		Grants: permission.Grants{
			ResultsEdit:   true,
			ResultsDelete: true,
		},
	},
	{
		Name:        DataUser,
		Description: "Can export data and configure feeds.",
		Grants: permission.Grants{
			DataExportSegments:        true,
			DataExportFlowMemberships: true,
			DataExportResults:         true,
			DataConfigureFeeds:        true,
			DataSubmitPrivacyRequests: true,
		},
	},
	{
		Name:        SQLViewer,
		Description: "Can view datasets generated from SQL.",
		Grants:      permission.Grants{SQLViewDatasets: true},
	},
	{
		Name:        SQLUser,
		Description: "Can sample and drill down into SQL datasets.",
		Parents:     []string{SQLViewer},
		Grants: permission.Grants{
			SQLSampleDatasets: true,
			SQLDrilldown:      true,
		},
	},
	{
		Name:        SQLDeveloper,
		Description: "Can modify SQL datasets.",
		Parents:     []string{SQLUser},
		Grants: permission.Grants{
			SQLConfigureDatasets: true,
			SQLEditDatasets:      true,
		},
	},
	{
		Name: ContentViewer,
		Description: "Can view the content list (templates, content blocks, images), " +
			"view individual pieces of content and use them in the flow builder.",
		Grants: permission.Grants{ContentView: true},
	},
	{
		Name:        ContentUser,
		Description: "Can create, edit and delete content in the content editor.",
		Parents:     []string{ContentViewer},
		Grants: permission.Grants{
			ContentEdit:   true,
			ContentDelete: true,
		},
	},
	{
		Name:        DocumentationViewer,
		Description: "Can view documentation.",
		Grants:      permission.Grants{OtherViewDocumentation: true},
	},
	{
		Name:        UsersManagement,
		Description: "Can modify the roles of users.",
		Grants:      permission.Grants{AdministrateUsers: true},
	},
	{
		Name:        IntegrationsViewer,
		Description: "Can view integration credentials.",
		Grants:      permission.Grants{IntegrationsView: true},
	},
	{
		Name:        IntegrationsUser,
		Description: "Can modify integration credentials.",
		Parents:     []string{IntegrationsViewer},
		Grants:      permission.Grants{IntegrationsEdit: true},
	},
	{
		Name:        OrganizationSettingsViewer,
		Description: "Can view organization settings.",
		Grants:      permission.Grants{OrgSettingsView: true},
	},
	{
		Name:        OrganizationSettingsUser,
		Description: "Can modify organization settings.",
		Parents:     []string{OrganizationSettingsViewer},
		Grants:      permission.Grants{OrgSettingsEdit: true},
	},
	{
		Name:        ContactsViewer,
		Description: "Can view single contact pages.",
		Grants:      permission.Grants{ContactsView: true},
	},
	{
		Name:        OrgAdmin,
		Description: "Can do everything in an organization.",
		Parents: []string{
			FlowsUser,
			SegmentationUser,
			ResultsUser,
			DataUser,
			SQLDeveloper,
			ContentUser,
			DocumentationViewer,
			UsersManagement,
			IntegrationsUser,
			ContactsViewer,
			OrganizationSettingsUser,
		},
	},
	{
		Name:        OrgUser,
		Description: "Can do most things in an organization, without managing users or editing organization settings.",
		Parents: []string{
			FlowsUser,
			SegmentationUser,
			ResultsUser,
			DataUser,
			SQLDeveloper,
			ContentUser,
			DocumentationViewer,
			IntegrationsUser,
			ContactsViewer,
			OrganizationSettingsViewer,
		},
	},
	{
		Name:        OrgViewer,
		Description: "Has a read-only view of an organization.",
		Parents: []string{
			FlowsViewer,
			SegmentationViewer,
			ResultsViewer,
			SQLViewer,
			ContentViewer,
			IntegrationsViewer,
			OrganizationSettingsViewer,
			ContactsViewer,
		},
	},
}

const customDescription = "Can do everything in an organization if granted permissions " +
	"individually, but nothing by default."

var groups = []struct {
	name  string
	roles []string
}{
	{FrontendGroup, []string{Custom, OrgAdmin, OrgUser, OrgViewer}},
	{OrgGroup, []string{OrgAdmin, OrgUser, OrgViewer}},
}

// Builder returns a builder preloaded with the catalog. Callers may append
// further roles or groups before building.
func Builder(cfg goRoles.Config, logger slog.Logger) *goRoles.Builder {
	b := goRoles.New().
		WithConfig(cfg).
		WithLogger(logger).
		WithPermissions(Permissions)

	for _, spec := range roles {
		b.WithRole(spec)
	}
	b.WithDenyAllRole(Custom, customDescription)

	for _, g := range groups {
		b.WithGroup(g.name, g.roles...)
	}
	return b
}

// Build compiles the catalog under cfg.
func Build(cfg goRoles.Config, logger slog.Logger) (*goRoles.Table, error) {
	return Builder(cfg, logger).Build()
}

var defaultTable = mustBuildDefault()

func mustBuildDefault() *goRoles.Table {
	t, err := Build(goRoles.DefaultConfig(), slog.Logger{})
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return t
}

// Default returns the catalog compiled with [goRoles.DefaultConfig].
func Default() *goRoles.Table { return defaultTable }
