package scraper

// JavaScript run in-page to harvest profile links from the category listing.
// Takes the business-links XPath; anchors resolve their href to an absolute
// URL, so no base-URL bookkeeping is needed afterwards.
const linkHarvestScript = `
	(() => {
		const result = document.evaluate(%q, document, null,
			XPathResult.ORDERED_NODE_SNAPSHOT_TYPE, null);

		const hrefs = [];
		for (let i = 0; i < result.snapshotLength; i++) {
			const el = result.snapshotItem(i);
			if (el.href) {
				hrefs.push(el.href);
			}
		}
		return hrefs;
	})()
`
