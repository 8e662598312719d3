package catalog

var insertMethods = []string{"append", "prepend", "before", "after"}

// ElementTypes lists element presets accepted by create_element.
var ElementTypes = []string{
	"Animation", "BackgroundVideoWrapper", "BlockContainer", "Blockquote", "Button",
	"CodeBlock", "DivBlock", "DOM", "DropdownWrapper", "DynamoWrapper", "Facebook", "Grid",
	"Heading", "HFlex", "VFlex", "HtmlEmbed", "Image", "LightboxWrapper", "LinkBlock",
	"List", "ListItem", "MapWidget", "NavbarWrapper", "Pagination", "Paragraph",
	"QuickStack", "RichText", "Row", "Section", "SliderWrapper", "Spline", "TabsWrapper",
	"TextBlock", "TextLink", "Twitter", "Video", "YouTubeVideo", "CommerceAddToCartWrapper",
	"CommerceCartQuickCheckoutActions", "CommerceCartWrapper",
	"CommerceCheckoutAdditionalInfoSummaryWrapper",
	"CommerceCheckoutAdditionalInputsContainer",
	"CommerceCheckoutCustomerInfoSummaryWrapper", "CommerceCheckoutDiscounts",
	"CommerceCheckoutFormContainer", "CommerceCheckoutOrderItemsWrapper",
	"CommerceCheckoutOrderSummaryWrapper", "CommerceCheckoutPaymentSummaryWrapper",
	"CommerceCheckoutShippingSummaryWrapper", "CommerceDownloadsWrapper",
	"CommerceOrderConfirmationContainer", "CommercePayPalCheckoutButton",
	"CommercePaypalCheckoutFormContainer", "FormBlockLabel", "FormButton",
	"FormCheckboxInput", "FormFileUploadWrapper", "FormForm", "FormRadioInput",
	"FormReCaptcha", "FormSelect", "FormTextarea", "FormTextInput", "LogIn", "ResetPassword",
	"SignUp", "UpdatePassword", "UserAccount", "UserAccountSubscriptionList",
	"UserLogOutLogIn", "IX2InstanceFactoryOnClass", "IX2InstanceFactoryOnElement",
	"SearchForm", "LayoutFeaturesList", "LayoutFeaturesMetrics", "LayoutFeaturesTable",
	"LayoutFooterDark", "LayoutFooterLight", "LayoutFooterSubscribe",
	"LayoutGalleryOverview", "LayoutGalleryScroll", "LayoutGallerySlider",
	"LayoutHeroHeadingCenter", "LayoutHeroHeadingLeft", "LayoutHeroHeadingRight",
	"LayoutHeroStack", "LayoutHeroSubscribeLeft", "LayoutHeroSubscribeRight",
	"LayoutHeroWithoutImage", "LayoutLogosQuoteBlock", "LayoutLogosQuoteDivider",
	"LayoutLogosTitleLarge", "LayoutLogosTitleSmall", "LayoutLogosWithoutTitle",
	"LayoutNavbarLogoCenter", "LayoutNavbarLogoLeft", "LayoutNavbarNoShadow",
	"LayoutPricingComparison", "LayoutPricingItems", "LayoutPricingOverview",
	"LayoutTeamCircles", "LayoutTeamSlider", "LayoutTestimonialColumnDark",
	"LayoutTestimonialColumnLight", "LayoutTestimonialImageLeft",
	"LayoutTestimonialSliderLarge", "LayoutTestimonialSliderSmall", "LayoutTestimonialStack",
	"StructureLayoutQuickStack1plus2", "StructureLayoutQuickStack1x1",
	"StructureLayoutQuickStack2plus1", "StructureLayoutQuickStack2x1",
	"StructureLayoutQuickStack2x2", "StructureLayoutQuickStack3x1",
	"StructureLayoutQuickStack4x1", "StructureLayoutQuickStackMasonry",
}

var noArguments = Object(nil)

// Default returns the designer tool catalog.
func Default() *Catalog {
	return New(elementTools()...).
		with(pageTools()...).
		with(componentTools()...).
		with(assetTools()...).
		with(classTools()...)
}

func (c *Catalog) with(tools ...*Tool) *Catalog {
	for _, tool := range tools {
		c.Add(tool)
	}
	return c
}

func elementTools() []*Tool {
	return []*Tool{
		NewTool("create_element",
			"Create a new element in the Designer. This is the primary tool for adding new content to the page. Use this when you need to add new structural or content elements.",
			Object(map[string]Property{
				"elementType":     Enum("Type of element to create. For layout, use Section, DivBlock, or Grid. For text, use Heading or Paragraph.", ElementTypes...),
				"insertMethod":    Enum("Method to insert the element relative to the target. 'append' is most common.", insertMethods...),
				"targetElementId": String("ID of the element to insert relative to. Required for 'before'/'after', optional for 'append'/'prepend' (defaults to selected element)."),
				"textContent":     String("Text content for elements that support it (e.g., Heading, Paragraph)."),
			}, "elementType")),
		NewTool("get_selected_element",
			"Get details of the currently selected element in the Designer. Use this to find the context for other operations.",
			noArguments),
		NewTool("set_selected_element",
			"Set the currently selected element in the Designer using its ID.",
			Object(map[string]Property{
				"elementId": String("The ID of the element to select."),
			}, "elementId")),
		NewTool("remove_element",
			"Remove an element from the page by its ID.",
			Object(map[string]Property{
				"elementId": String("The ID of the element to remove."),
			}, "elementId")),
		NewTool("get_all_elements",
			"Get a list of all elements on the current page. Useful for finding element IDs.",
			noArguments),
		NewTool("set_text_content",
			"Set the text content of a given element.",
			Object(map[string]Property{
				"elementId":   String("The ID of the element whose text content will be set."),
				"textContent": String("The new text content."),
			}, "elementId", "textContent")),
		NewTool("get_text_content",
			"Get the text content of a given element.",
			Object(map[string]Property{
				"elementId": String("The ID of the element to get text content from."),
			}, "elementId")),
		relativeInsert("insert_element_before", "Insert a new element before a specified target element.", "targetElementId", "The ID of the element to insert before."),
		relativeInsert("insert_element_after", "Insert a new element after a specified target element.", "targetElementId", "The ID of the element to insert after."),
		relativeInsert("append_element", "Append a new element as a child of a specified parent element.", "parentElementId", "The ID of the element to append the new element to."),
		relativeInsert("prepend_element", "Prepend a new element as a child of a specified parent element.", "parentElementId", "The ID of the element to prepend the new element to."),
	}
}

func relativeInsert(name, description, anchor, anchorDescription string) *Tool {
	return NewTool(name, description, Object(map[string]Property{
		"elementType": String("Type of element to create."),
		anchor:        String(anchorDescription),
		"textContent": String("Optional text content for the new element."),
	}, "elementType", anchor))
}

func pageTools() []*Tool {
	return []*Tool{
		NewTool("get_current_page", "Get details of the current page in the Designer.", noArguments),
		NewTool("get_current_breakpoint", "Get the current responsive breakpoint being viewed in the Designer.", noArguments),
		NewTool("get_site_info", "Get information about the current site.", noArguments),
		NewTool("notify_user",
			"Send a notification to the user in the Designer interface.",
			Object(map[string]Property{
				"message": String("The message to display in the notification."),
				"type":    Enum("The type of notification to display.", "info", "success", "warning", "error"),
			}, "message")),
	}
}

func componentTools() []*Tool {
	return []*Tool{
		NewTool("create_component_instance",
			"Create an instance of a component.",
			Object(map[string]Property{
				"componentId":     String("The ID of the component to instantiate."),
				"parentElementId": String("ID of the parent to append the component to. Defaults to selected element."),
				"insertMethod":    Enum("Method to insert the component instance.", insertMethods...),
			}, "componentId")),
		NewTool("list_components", "List all available components in the site.", noArguments),
	}
}

func assetTools() []*Tool {
	return []*Tool{
		NewTool("upload_asset",
			"Upload a new asset (e.g., image) to the project.",
			Object(map[string]Property{
				"assetData": String("Base64 encoded data of the asset to upload."),
				"fileName":  String("The file name for the asset (e.g., 'image.png')."),
				"altText":   String("Optional alt text for the asset."),
			}, "assetData", "fileName")),
		NewTool("set_image_asset",
			"Set the image source for an Image element using an asset ID.",
			Object(map[string]Property{
				"elementId": String("The ID of the Image element."),
				"assetId":   String("The ID of the asset to use for the image."),
				"altText":   String("Optional alt text for the image."),
			}, "elementId", "assetId")),
	}
}

func classTools() []*Tool {
	return []*Tool{
		NewTool("create_semantic_class",
			"Create a new semantic CSS class with specified styles. This is the foundation of styling in the Designer.",
			Object(map[string]Property{
				"className":   String("The name of the class to create (e.g., 'primary-button')."),
				"styles":      StringMap("A map of CSS properties (kebab-case) and their values."),
				"description": String("Optional description of what the class is for."),
			}, "className", "styles")),
		NewTool("apply_semantic_class",
			"Apply an existing semantic class to an element.",
			Object(map[string]Property{
				"elementId": String("The ID of the element to apply the class to."),
				"className": String("The name of the semantic class to apply."),
				"replace":   Bool("If true, replaces all existing classes on the element. Defaults to false."),
			}, "elementId", "className")),
		NewTool("apply_multiple_classes",
			"Apply multiple existing semantic classes to an element.",
			Object(map[string]Property{
				"elementId":  String("The ID of the element to apply classes to."),
				"classNames": StringArray("An array of semantic class names to apply."),
				"replace":    Bool("If true, replaces all existing classes on the element. Defaults to false."),
			}, "elementId", "classNames")),
		NewTool("list_semantic_classes",
			"List all available semantic classes in the project.",
			Object(map[string]Property{
				"filter": String("Optional filter to search for specific class names."),
			})),
		NewTool("get_semantic_class_properties",
			"Get the CSS properties of a specific semantic class.",
			Object(map[string]Property{
				"className": String("The name of the semantic class."),
			}, "className")),
		NewTool("update_semantic_class",
			"Update the styles of an existing semantic class.",
			Object(map[string]Property{
				"className": String("The name of the class to update."),
				"styles":    StringMap("A map of CSS properties (kebab-case) to update."),
				"merge":     Bool("If true, merges with existing styles. If false, replaces them. Defaults to true."),
			}, "className", "styles")),
		NewTool("remove_semantic_class",
			"Remove a semantic class from the project entirely.",
			Object(map[string]Property{
				"className": String("The name of the class to remove."),
			}, "className")),
		NewTool("get_element_classes",
			"Get the list of classes applied to a specific element.",
			Object(map[string]Property{
				"elementId": String("The ID of the element."),
			}, "elementId")),
		NewTool("remove_class_from_element",
			"Remove a specific class from an element.",
			Object(map[string]Property{
				"elementId": String("The ID of the element."),
				"className": String("The class name to remove."),
			}, "elementId", "className")),
		NewTool("create_element_with_classes",
			"Create a new element and apply one or more semantic classes in a single step.",
			Object(map[string]Property{
				"elementType":     String("Type of element to create."),
				"classNames":      StringArray("An array of semantic class names to apply to the new element."),
				"insertMethod":    Enum("Method to insert the element relative to the target.", insertMethods...),
				"targetElementId": String("ID of the element to insert relative to."),
				"textContent":     String("Optional text content for the new element."),
			}, "elementType", "classNames")),
	}
}
