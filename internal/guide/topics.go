// Where: internal/guide/topics.go
// What: Quick-reference topic data for view development.
// Why: The guide command serves curated examples offline; entries are kept in
//      declaration order for stable listings.
package guide

// Snippet is one named example inside an entry. Name is empty when the entry
// has a single anonymous example.
type Snippet struct {
	Name string
	Code string
}

// Entry is one reference item under a topic.
type Entry struct {
	Key         string
	Description string
	Snippets    []Snippet
	// Bullets hold prose examples rendered as a list instead of XML snippets.
	Bullets []string
	Notes   string
}

// Topic groups entries under one guide subject.
type Topic struct {
	Key     string
	Emoji   string
	Title   string
	Summary string
	Entries []Entry
}

// Topics lists every guide subject in menu order.
var Topics = []Topic{
	{
		Key:     "form",
		Emoji:   "📝",
		Title:   "Form View Reference",
		Summary: "Form view examples (fields, widgets, layout)",
		Entries: []Entry{
			{
				Key:         "basic_field",
				Description: "Add a basic field to form view",
				Snippets:    []Snippet{{Code: `<field name="field_name" string="Custom Label"/>`}},
				Notes:       "Basic field with custom label. Most common use case.",
			},
			{
				Key:         "readonly_field",
				Description: "Add readonly field with conditions",
				Snippets:    []Snippet{{Code: `<field name="field_name" readonly="state in ['done', 'cancel']"/>`}},
				Notes:       "Modern syntax using Python expressions instead of deprecated attrs.",
			},
			{
				Key:         "required_field",
				Description: "Add required field with conditions",
				Snippets:    []Snippet{{Code: `<field name="field_name" required="field_a and not field_b"/>`}},
				Notes:       "Conditional requirements based on other field values.",
			},
			{
				Key:         "invisible_field",
				Description: "Add field with conditional visibility",
				Snippets:    []Snippet{{Code: `<field name="field_name" invisible="state == 'draft'"/>`}},
				Notes:       "Hide/show fields based on conditions. Use direct invisible attribute.",
			},
			{
				Key:         "widget_field",
				Description: "Add field with specific widget",
				Snippets:    []Snippet{{Code: `<field name="email" widget="email"/>`}},
				Notes:       "Common widgets: email, url, phone, monetary, percentage, many2many_tags",
			},
			{
				Key:         "monetary_field",
				Description: "Add monetary field with currency",
				Snippets:    []Snippet{{Code: `<field name="amount" widget="monetary" options="{'currency_field': 'currency_id'}"/>`}},
				Notes:       "Requires currency_id field to be present in the view or model.",
			},
			{
				Key:         "many2one_field",
				Description: "Add many2one field with options",
				Snippets:    []Snippet{{Code: `<field name="partner_id" options="{'no_create': True, 'no_quick_create': True}"/>`}},
				Notes:       "Control creation options for relational fields.",
			},
			{
				Key:         "many2many_tags",
				Description: "Add many2many field as tags",
				Snippets:    []Snippet{{Code: `<field name="tag_ids" widget="many2many_tags" options="{'color_field': 'color'}"/>`}},
				Notes:       "Displays many2many as colored tags. Requires color field in related model.",
			},
			{
				Key:         "image_field",
				Description: "Add image field with preview",
				Snippets:    []Snippet{{Code: `<field name="image" widget="image" options="{'size': [100, 100]}"/>`}},
				Notes:       "Shows image preview with specified dimensions.",
			},
			{
				Key:         "group",
				Description: "Group fields in columns",
				Snippets: []Snippet{{Code: `<group string="Contact Information">
    <field name="name"/>
    <field name="email"/>
    <field name="phone"/>
</group>`}},
				Notes: "Default 2 columns. Use col='4' for custom column count.",
			},
			{
				Key:         "notebook",
				Description: "Add tabbed sections",
				Snippets: []Snippet{{Code: `<notebook>
    <page string="General" name="general">
        <group>
            <field name="name"/>
        </group>
    </page>
    <page string="Details" name="details">
        <group>
            <field name="description"/>
        </group>
    </page>
</notebook>`}},
				Notes: "Organize content in tabs. Pages can have conditional visibility.",
			},
			{
				Key:         "button",
				Description: "Add action button",
				Snippets:    []Snippet{{Code: `<button type="object" name="action_confirm" string="Confirm" class="btn-primary"/>`}},
				Notes:       "Common types: object, action. Classes: btn-primary, btn-secondary, btn-danger.",
			},
			{
				Key:         "status_bar",
				Description: "Add status bar in header",
				Snippets: []Snippet{{Code: `<header>
    <field name="state" widget="statusbar" statusbar_visible="draft,confirm,done"/>
</header>`}},
				Notes: "Shows workflow states. Use statusbar_visible to control visible states.",
			},
		},
	},
	{
		Key:     "list",
		Emoji:   "📊",
		Title:   "List View Reference",
		Summary: "List view examples (fields, decorations, buttons)",
		Entries: []Entry{
			{
				Key:         "basic_field",
				Description: "Add field to list view",
				Snippets:    []Snippet{{Code: `<field name="field_name" string="Custom Header"/>`}},
				Notes:       "Basic field with custom column header.",
			},
			{
				Key:         "optional_field",
				Description: "Add optional field (user can toggle)",
				Snippets:    []Snippet{{Code: `<field name="field_name" optional="show"/>`}},
				Notes:       "Use 'show' to display by default, 'hide' to hide by default.",
			},
			{
				Key:         "sum_field",
				Description: "Add field with sum total",
				Snippets:    []Snippet{{Code: `<field name="amount" sum="Total:"/>`}},
				Notes:       "Shows sum at bottom. Also available: avg='Average:'",
			},
			{
				Key:         "widget_field",
				Description: "Add field with widget",
				Snippets:    []Snippet{{Code: `<field name="priority" widget="priority"/>`}},
				Notes:       "Common widgets: priority, many2many_tags, badge, boolean_button.",
			},
			{
				Key:         "decorated_field",
				Description: "Add field with text decoration",
				Snippets:    []Snippet{{Code: `<field name="name" decoration-bf="priority == 'high'"/>`}},
				Notes:       "Decorations: bf(bold), it(italic), info, warning, danger, success, muted.",
			},
			{
				Key:         "button",
				Description: "Add button to list view",
				Snippets:    []Snippet{{Code: `<button type="object" name="action_toggle" icon="fa-star"/>`}},
				Notes:       "Use icon attribute for icon-only buttons. No string needed.",
			},
			{
				Key:         "editable_list",
				Description: "Make list editable inline",
				Snippets:    []Snippet{{Code: `<list editable="bottom">`}},
				Notes:       "Use 'top' or 'bottom'. Allows inline editing of records.",
			},
			{
				Key:         "multi_edit",
				Description: "Enable bulk field editing",
				Snippets:    []Snippet{{Code: `<list multi_edit="1">`}},
				Notes:       "Allows editing multiple records at once for specific fields.",
			},
			{
				Key:         "row_decoration",
				Description: "Add row decorations based on conditions",
				Snippets:    []Snippet{{Code: `<list decoration-danger="state == 'error'" decoration-success="state == 'done'">`}},
				Notes:       "Applies styles to entire row based on field values.",
			},
		},
	},
	{
		Key:     "search",
		Emoji:   "🔍",
		Title:   "Search View Reference",
		Summary: "Search view examples (filters, group by)",
		Entries: []Entry{
			{
				Key:         "search_field",
				Description: "Add searchable field",
				Snippets:    []Snippet{{Code: `<field name="name" string="Name" filter_domain="[('name', 'ilike', self)]"/>`}},
				Notes:       "filter_domain defines how the search is performed.",
			},
			{
				Key:         "filter",
				Description: "Add filter button",
				Snippets:    []Snippet{{Code: `<filter string="Active" name="active" domain="[('active', '=', True)]"/>`}},
				Notes:       "Creates clickable filter. Use domain to define filter conditions.",
			},
			{
				Key:         "date_filter",
				Description: "Add date-based filter",
				Snippets:    []Snippet{{Code: `<filter string="This Month" name="this_month" domain="[('date', '>=', context_today().replace(day=1).strftime('%Y-%m-%d'))]"/>`}},
				Notes:       "Use context_today() for dynamic date filters.",
			},
			{
				Key:         "my_records_filter",
				Description: "Add 'My Records' filter",
				Snippets:    []Snippet{{Code: `<filter string="My Records" name="my" domain="[('user_id', '=', uid)]"/>`}},
				Notes:       "Common pattern to filter records assigned to current user.",
			},
			{
				Key:         "group_by",
				Description: "Add group by option",
				Snippets: []Snippet{{Code: `<group expand="0" string="Group By">
    <filter string="Status" name="group_status" context="{'group_by': 'state'}"/>
    <filter string="Assigned To" name="group_user" context="{'group_by': 'user_id'}"/>
</group>`}},
				Notes: "Groups records by field value. expand='0' means collapsed by default.",
			},
			{
				Key:         "date_group_by",
				Description: "Add date-based group by",
				Snippets:    []Snippet{{Code: `<filter string="Month" name="group_month" context="{'group_by': 'date:month'}"/>`}},
				Notes:       "Group by date periods: :day, :week, :month, :quarter, :year.",
			},
			{
				Key:         "separator",
				Description: "Add visual separator",
				Snippets:    []Snippet{{Code: `<separator/>`}},
				Notes:       "Adds visual separator between filters for better organization.",
			},
		},
	},
	{
		Key:     "widgets",
		Emoji:   "🎛️",
		Title:   "Widget Reference",
		Summary: "Available widgets for different field types",
		Entries: []Entry{
			{
				Key:         "text_widgets",
				Description: "Text and character field widgets",
				Snippets: []Snippet{
					{Name: "email", Code: `<field name="email" widget="email"/>`},
					{Name: "url", Code: `<field name="website" widget="url"/>`},
					{Name: "phone", Code: `<field name="phone" widget="phone"/>`},
					{Name: "text", Code: `<field name="description" widget="text"/>`},
					{Name: "html", Code: `<field name="content" widget="html"/>`},
				},
				Notes: "Text widgets provide validation and formatting.",
			},
			{
				Key:         "numeric_widgets",
				Description: "Numeric field widgets",
				Snippets: []Snippet{
					{Name: "monetary", Code: `<field name="amount" widget="monetary"/>`},
					{Name: "percentage", Code: `<field name="progress" widget="percentage"/>`},
					{Name: "float", Code: `<field name="weight" widget="float"/>`},
					{Name: "handle", Code: `<field name="sequence" widget="handle"/>`},
				},
				Notes: "Handle widget enables drag-and-drop ordering in one2many.",
			},
			{
				Key:         "selection_widgets",
				Description: "Selection and boolean field widgets",
				Snippets: []Snippet{
					{Name: "radio", Code: `<field name="state" widget="radio"/>`},
					{Name: "statusbar", Code: `<field name="state" widget="statusbar"/>`},
					{Name: "boolean_button", Code: `<field name="active" widget="boolean_button"/>`},
					{Name: "priority", Code: `<field name="priority" widget="priority"/>`},
				},
				Notes: "Radio shows selection as radio buttons instead of dropdown.",
			},
			{
				Key:         "relational_widgets",
				Description: "Relational field widgets",
				Snippets: []Snippet{
					{Name: "many2many_tags", Code: `<field name="tag_ids" widget="many2many_tags"/>`},
					{Name: "many2many_checkboxes", Code: `<field name="category_ids" widget="many2many_checkboxes"/>`},
					{Name: "one2many_list", Code: `<field name="line_ids" widget="one2many_list"/>`},
				},
				Notes: "Tags widget shows many2many as colored tags.",
			},
			{
				Key:         "binary_widgets",
				Description: "Binary and file field widgets",
				Snippets: []Snippet{
					{Name: "image", Code: `<field name="image" widget="image"/>`},
					{Name: "binary", Code: `<field name="attachment" widget="binary"/>`},
					{Name: "pdf_viewer", Code: `<field name="document" widget="pdf_viewer"/>`},
				},
				Notes: "Image widget shows preview, binary for file downloads.",
			},
			{
				Key:         "special_widgets",
				Description: "Special purpose widgets",
				Snippets: []Snippet{
					{Name: "color", Code: `<field name="color" widget="color"/>`},
					{Name: "statinfo", Code: `<field name="total_amount" widget="statinfo"/>`},
					{Name: "badge", Code: `<field name="state" widget="badge"/>`},
				},
				Notes: "Color widget provides color picker, statinfo for statistics display.",
			},
		},
	},
	{
		Key:     "patterns",
		Emoji:   "⚡",
		Title:   "Common Patterns & Best Practices",
		Summary: "Common patterns and best practices",
		Entries: []Entry{
			{
				Key:         "modern_attrs",
				Description: "Modern attribute syntax (Odoo 17+)",
				Bullets: []string{
					`Instead of attrs="{'invisible': 1}" use invisible="True"`,
					`Instead of attrs="{'readonly': [('state', '=', 'done')]}" use readonly="state == 'done'"`,
					`Instead of attrs="{'required': [('type', '=', 'important')]}" use required="type == 'important'"`,
					`Use 'and' and 'or' operators: invisible="state == 'done' or type == 'draft'"`,
				},
				Notes: "Direct attributes are cleaner and more performant than deprecated attrs.",
			},
			{
				Key:         "python_expressions",
				Description: "Available variables in Python expressions",
				Bullets: []string{
					"Field values: field_name (current record values)",
					"Current user: uid (user ID)",
					"Current date: today (YYYY-MM-DD format)",
					"Current datetime: now (YYYY-MM-DD hh:mm:ss format)",
					"Context variables: context.get('key')",
					"Parent record: parent.field_name (in subviews)",
				},
				Notes: "Use these variables in invisible, readonly, required expressions.",
			},
			{
				Key:         "performance",
				Description: "Performance best practices",
				Bullets: []string{
					"Use column_invisible instead of invisible for list view columns",
					"Limit fields in list views to essential ones only",
					"Use optional='hide' for non-critical list fields",
					"Prefer direct field access over computed expressions",
				},
				Notes: "Following these patterns improves view loading performance.",
			},
		},
	},
}

// TopicByKey looks up a topic by its command-line key.
func TopicByKey(key string) (Topic, bool) {
	for _, topic := range Topics {
		if topic.Key == key {
			return topic, true
		}
	}
	return Topic{}, false
}

// EntryByKey looks up an entry inside the topic.
func (t Topic) EntryByKey(key string) (Entry, bool) {
	for _, entry := range t.Entries {
		if entry.Key == key {
			return entry, true
		}
	}
	return Entry{}, false
}
